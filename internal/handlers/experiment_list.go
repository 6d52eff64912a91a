package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/models"
)

// ExperimentLister defines the interface that the experiment service must implement.
type ExperimentLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.ExperimentDB, error)
}

// NewExperimentListHandler returns an HTTP handler listing the caller's
// experiments with their training status.
// @Summary List own experiments
// @Description Returns all experiments owned by the authenticated user
// @Tags experiments
// @Produce json
// @Success 200 {array} models.ExperimentDB "Owned experiments"
// @Failure 401 {object} handlers.ExperimentErrorResponse "Unauthorized"
// @Router /experiments/ [get]
// @Security BearerAuth
func NewExperimentListHandler(svc ExperimentLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		experiments, err := svc.List(r.Context(), userID)
		if err != nil {
			writeExperimentError(w, err)
			return
		}

		if experiments == nil {
			experiments = []models.ExperimentDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(experiments)
	}
}
