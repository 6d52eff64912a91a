package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Predictor defines the interface that the experiment service must implement.
type Predictor interface {
	Predict(ctx context.Context, experimentID uuid.UUID, input []any) (string, error)
}

// PredictRequest represents the JSON body for a prediction
// swagger:model PredictRequest
type PredictRequest struct {
	// Feature values, one per training feature column
	// required: true
	Input []any `json:"input"`
}

// PredictResponse represents a prediction result
// swagger:model PredictResponse
type PredictResponse struct {
	// Predicted class index, per the schema string's label mapping
	// default: 0
	Output string `json:"output"`
}

// NewPredictHandler returns an HTTP handler serving single predictions from
// a live experiment's persisted model. Gated by the live flag and knowledge
// of the experiment id, not by ownership.
// @Summary Predict with a live experiment
// @Description Loads the persisted model and returns the predicted class index for one input vector
// @Tags experiments
// @Accept json
// @Produce json
// @Param id path string true "Experiment id"
// @Param predictRequest body handlers.PredictRequest true "Feature vector"
// @Success 200 {object} handlers.PredictResponse "Prediction"
// @Failure 400 {object} handlers.ExperimentErrorResponse "Experiment not live or bad input"
// @Failure 401 {object} handlers.ExperimentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ExperimentErrorResponse "Unknown id"
// @Router /experiments/model/{id} [post]
// @Security BearerAuth
func NewPredictHandler(svc Predictor, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUserID(w, r, tokener); !ok {
			return
		}

		experimentID, ok := pathID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		var req PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "invalid request body"})
			return
		}

		output, err := svc.Predict(r.Context(), experimentID, req.Input)
		if err != nil {
			writeExperimentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PredictResponse{Output: output})
	}
}
