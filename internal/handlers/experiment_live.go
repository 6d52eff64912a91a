package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/models"
)

// LiveToggler defines the interface that the experiment service must implement.
type LiveToggler interface {
	ToggleLive(ctx context.Context, userID, experimentID uuid.UUID) (*models.ExperimentDB, error)
}

// NewExperimentLiveHandler returns an HTTP handler flipping an experiment's
// live flag. Owner only. Toggling twice restores the original state.
// @Summary Toggle experiment live flag
// @Description Flips the boolean gate that permits predictions
// @Tags experiments
// @Produce json
// @Param id path string true "Experiment id"
// @Success 200 {object} models.ExperimentDB "Updated experiment record"
// @Failure 401 {object} handlers.ExperimentErrorResponse "Unauthorized or not the owner"
// @Failure 404 {object} handlers.ExperimentErrorResponse "Unknown id"
// @Router /experiments/live/{id} [post]
// @Security BearerAuth
func NewExperimentLiveHandler(svc LiveToggler, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		experimentID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		experiment, err := svc.ToggleLive(r.Context(), userID, experimentID)
		if err != nil {
			writeExperimentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(experiment)
	}
}
