package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/models"
	"github.com/supermaker/experiments-api/internal/services"
)

const maxUploadSize = 32 << 20 // 32 MB multipart memory limit

// FileUploader defines the interface that the file service must implement.
type FileUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, title, filename string, content []byte) (*models.FileDB, error)
}

// FileErrorResponse represents an error response for file endpoints
// swagger:model FileErrorResponse
type FileErrorResponse struct {
	// Error message
	// default: Bad-Formatted CSV file
	Error string `json:"error"`
}

// NewFileUploadHandler returns an HTTP handler for CSV upload.
// @Summary Upload a CSV file
// @Description Accepts a multipart form with a title and one .csv file, validates the content and stores it under the caller's subtree
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "File title"
// @Param file formData file true "Structured data in a .csv file"
// @Success 200 {object} models.FileDB "Stored file record"
// @Failure 400 {object} handlers.FileErrorResponse "Missing file, bad name or malformed CSV"
// @Failure 401 {object} handlers.FileErrorResponse "Unauthorized"
// @Router /files/ [post]
// @Security BearerAuth
func NewFileUploadHandler(svc FileUploader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FileErrorResponse{Error: "Invalid file upload form"})
			return
		}

		part, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FileErrorResponse{Error: "Provide a CSV file"})
			return
		}
		defer part.Close()

		content, err := io.ReadAll(part)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FileErrorResponse{Error: "Failed to read uploaded file"})
			return
		}

		file, err := svc.Upload(r.Context(), userID, r.FormValue("title"), header.Filename, content)
		if err != nil {
			writeFileError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(file)
	}
}

// writeFileError maps file service errors onto HTTP statuses.
func writeFileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUnsupportedFileType):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FileErrorResponse{Error: "Unsupported file type, Only .csv files are accepted"})
	case errors.Is(err, services.ErrInvalidFilename):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FileErrorResponse{Error: "Invalid filename. Only alphanumeric characters, underscores, periods, and hyphens are allowed"})
	case errors.Is(err, services.ErrMalformedCSV):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FileErrorResponse{Error: "Bad-Formatted CSV file"})
	case errors.Is(err, services.ErrFileNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(FileErrorResponse{Error: "Not found"})
	case errors.Is(err, services.ErrNotFileOwner):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(FileErrorResponse{Error: "File is not yours"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(FileErrorResponse{Error: "Internal server error"})
	}
}
