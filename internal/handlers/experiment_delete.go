package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ExperimentDeleter defines the interface that the experiment service must implement.
type ExperimentDeleter interface {
	Delete(ctx context.Context, userID, experimentID uuid.UUID) error
}

// NewExperimentDeleteHandler returns an HTTP handler deleting an owned
// experiment and its model artifact.
// @Summary Delete an experiment
// @Description Removes the model artifact (if any) then the record. Owner only.
// @Tags experiments
// @Produce json
// @Param id path string true "Experiment id"
// @Success 204 "Experiment deleted"
// @Failure 401 {object} handlers.ExperimentErrorResponse "Unauthorized or not the owner"
// @Failure 404 {object} handlers.ExperimentErrorResponse "Unknown id"
// @Router /experiments/{id} [delete]
// @Security BearerAuth
func NewExperimentDeleteHandler(svc ExperimentDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		experimentID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, experimentID); err != nil {
			writeExperimentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
