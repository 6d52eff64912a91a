package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/logger"
)

// FileDownloader defines the interface that the file service must implement.
type FileDownloader interface {
	Download(ctx context.Context, userID, fileID uuid.UUID) (io.ReadCloser, string, error)
}

// NewFileDownloadHandler returns an HTTP handler streaming a file's CSV
// content to its owner.
// @Summary Download a file
// @Description Streams the stored CSV. Owner only.
// @Tags files
// @Produce text/csv
// @Param id path string true "File id"
// @Success 200 {string} string "CSV content"
// @Failure 401 {object} handlers.FileErrorResponse "Unauthorized or not the owner"
// @Failure 404 {object} handlers.FileErrorResponse "Unknown id"
// @Router /files/download/{id} [get]
// @Security BearerAuth
func NewFileDownloadHandler(svc FileDownloader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		fileID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		rc, filename, err := svc.Download(r.Context(), userID, fileID)
		if err != nil {
			writeFileError(w, err)
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, rc); err != nil {
			logger.Log.Errorw("failed to stream file", "file_id", fileID, "err", err)
		}
	}
}
