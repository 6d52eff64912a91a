package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/models"
	"github.com/supermaker/experiments-api/internal/services"
)

// AccountReader defines the interface that the account service must implement.
type AccountReader interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// AccountDeleter defines the account deletion interface.
type AccountDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// MeErrorResponse represents an error response for account endpoints
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for reading the caller's account.
// @Summary Get own account
// @Description Returns the authenticated user's record
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Account record"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MeErrorResponse "Account not found"
// @Router /me [get]
// @Security BearerAuth
func NewMeHandler(svc AccountReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		user, err := svc.Me(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MeErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// NewDeleteMeHandler returns an HTTP handler that deletes the caller's
// account with all owned files and experiments.
// @Summary Delete own account
// @Description Removes the account, cascading owned files and experiments with their blobs
// @Tags users
// @Produce json
// @Success 204 "Account deleted"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MeErrorResponse "Account not found"
// @Router /me [delete]
// @Security BearerAuth
func NewDeleteMeHandler(svc AccountDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MeErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
