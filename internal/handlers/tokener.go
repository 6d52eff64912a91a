package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/logger"
)

// Tokener resolves the authenticated caller from the bearer token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

type unauthorizedResponse struct {
	Error string `json:"error"`
}

// currentUserID extracts the caller's user id from the request. On failure
// it writes a 401 response and returns false.
func currentUserID(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("authorization failed", "err", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(unauthorizedResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	userID, err := tokener.GetUserID(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("authorization failed", "err", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(unauthorizedResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}

	return userID, true
}

// pathID parses the {id} chi route parameter. On failure it writes a 404
// response and returns false.
func pathID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(unauthorizedResponse{Error: "Not found"})
		return uuid.Nil, false
	}
	return id, true
}
