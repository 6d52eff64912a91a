package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/models"
)

// FileLister defines the interface that the file service must implement.
type FileLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.FileDB, error)
}

// NewFileListHandler returns an HTTP handler listing the caller's files.
// @Summary List own files
// @Description Returns all files owned by the authenticated user
// @Tags files
// @Produce json
// @Success 200 {array} models.FileDB "Owned files"
// @Failure 401 {object} handlers.FileErrorResponse "Unauthorized"
// @Router /files/ [get]
// @Security BearerAuth
func NewFileListHandler(svc FileLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		files, err := svc.List(r.Context(), userID)
		if err != nil {
			writeFileError(w, err)
			return
		}

		if files == nil {
			files = []models.FileDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(files)
	}
}
