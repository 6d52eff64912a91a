package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/models"
)

// FileUpdater defines the interface that the file service must implement.
type FileUpdater interface {
	Update(ctx context.Context, userID, fileID uuid.UUID, title *string, filename string, content []byte) (*models.FileDB, error)
}

// NewFileUpdateHandler returns an HTTP handler patching a file's title
// and/or content. Owner only.
// @Summary Patch a file
// @Description Replaces the title and/or CSV content of an owned file. A replacement file removes the old blob.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "File id"
// @Param title formData string false "New title"
// @Param file formData file false "Replacement .csv file"
// @Success 200 {object} models.FileDB "Updated record"
// @Failure 400 {object} handlers.FileErrorResponse "Bad name or malformed CSV"
// @Failure 401 {object} handlers.FileErrorResponse "Unauthorized or not the owner"
// @Failure 404 {object} handlers.FileErrorResponse "Unknown id"
// @Router /files/{id} [patch]
// @Security BearerAuth
func NewFileUpdateHandler(svc FileUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		fileID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FileErrorResponse{Error: "Invalid file upload form"})
			return
		}

		var title *string
		if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
			title = &values[0]
		}

		var filename string
		var content []byte
		if part, header, err := r.FormFile("file"); err == nil {
			defer part.Close()
			content, err = io.ReadAll(part)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FileErrorResponse{Error: "Failed to read uploaded file"})
				return
			}
			filename = header.Filename
		}

		file, err := svc.Update(r.Context(), userID, fileID, title, filename, content)
		if err != nil {
			writeFileError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(file)
	}
}
