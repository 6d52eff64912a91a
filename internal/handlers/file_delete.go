package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FileDeleter defines the interface that the file service must implement.
type FileDeleter interface {
	Delete(ctx context.Context, userID, fileID uuid.UUID) error
}

// NewFileDeleteHandler returns an HTTP handler deleting an owned file and
// its blob.
// @Summary Delete a file
// @Description Removes the blob then the record. Owner only.
// @Tags files
// @Produce json
// @Param id path string true "File id"
// @Success 204 "File deleted"
// @Failure 401 {object} handlers.FileErrorResponse "Unauthorized or not the owner"
// @Failure 404 {object} handlers.FileErrorResponse "Unknown id"
// @Router /files/{id} [delete]
// @Security BearerAuth
func NewFileDeleteHandler(svc FileDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		fileID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, fileID); err != nil {
			writeFileError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
