package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/models"
)

// ExperimentGetter defines the interface that the experiment service must implement.
type ExperimentGetter interface {
	Get(ctx context.Context, experimentID uuid.UUID) (*models.ExperimentDB, error)
}

// NewExperimentGetHandler returns an HTTP handler fetching an experiment by
// id. Reads are by id, not owner-scoped.
// @Summary Get an experiment
// @Description Returns an experiment record by id, including training status
// @Tags experiments
// @Produce json
// @Param id path string true "Experiment id"
// @Success 200 {object} models.ExperimentDB "Experiment record"
// @Failure 401 {object} handlers.ExperimentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ExperimentErrorResponse "Unknown id"
// @Router /experiments/{id} [get]
// @Security BearerAuth
func NewExperimentGetHandler(svc ExperimentGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUserID(w, r, tokener); !ok {
			return
		}

		experimentID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		experiment, err := svc.Get(r.Context(), experimentID)
		if err != nil {
			writeExperimentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(experiment)
	}
}
