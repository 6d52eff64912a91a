package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/models"
)

// FileGetter defines the interface that the file service must implement.
type FileGetter interface {
	Get(ctx context.Context, fileID uuid.UUID) (*models.FileDB, error)
}

// NewFileGetHandler returns an HTTP handler fetching a file record by id.
// Reads are by id, not owner-scoped.
// @Summary Get a file record
// @Description Returns a file record by id
// @Tags files
// @Produce json
// @Param id path string true "File id"
// @Success 200 {object} models.FileDB "File record"
// @Failure 401 {object} handlers.FileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.FileErrorResponse "Unknown id"
// @Router /files/{id} [get]
// @Security BearerAuth
func NewFileGetHandler(svc FileGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUserID(w, r, tokener); !ok {
			return
		}

		fileID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		file, err := svc.Get(r.Context(), fileID)
		if err != nil {
			writeFileError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(file)
	}
}
