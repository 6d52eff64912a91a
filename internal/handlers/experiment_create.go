package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/models"
	"github.com/supermaker/experiments-api/internal/services"
)

// ExperimentCreator defines the interface that the experiment service must implement.
type ExperimentCreator interface {
	Create(ctx context.Context, userID, fileID uuid.UUID, title, targetCol string) (*models.ExperimentDB, error)
}

// ExperimentCreateRequest represents the JSON body for experiment creation
// swagger:model ExperimentCreateRequest
type ExperimentCreateRequest struct {
	// Experiment title
	// required: true
	// default: iris-baseline
	Title string `json:"title"`

	// Source file id
	// required: true
	FileID uuid.UUID `json:"file_id"`

	// Target column name
	// required: true
	// default: label
	TargetCol string `json:"target_col"`
}

// ExperimentErrorResponse represents an error response for experiment endpoints
// swagger:model ExperimentErrorResponse
type ExperimentErrorResponse struct {
	// Error message
	// default: Target column not in file
	Error string `json:"error"`
}

// NewExperimentCreateHandler returns an HTTP handler creating an experiment.
// The record is returned immediately, untrained; training runs as a durable
// background job.
// @Summary Create an experiment
// @Description Validates the owned source file and target column, stores the experiment and queues training
// @Tags experiments
// @Accept json
// @Produce json
// @Param experimentCreateRequest body handlers.ExperimentCreateRequest true "Experiment creation request"
// @Success 200 {object} models.ExperimentDB "Untrained experiment record"
// @Failure 400 {object} handlers.ExperimentErrorResponse "Unknown file, foreign file or bad target column"
// @Failure 401 {object} handlers.ExperimentErrorResponse "Unauthorized"
// @Router /experiments/ [post]
// @Security BearerAuth
func NewExperimentCreateHandler(svc ExperimentCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r, tokener)
		if !ok {
			return
		}

		var req ExperimentCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "invalid request body"})
			return
		}

		experiment, err := svc.Create(r.Context(), userID, req.FileID, req.Title, req.TargetCol)
		if err != nil {
			writeExperimentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(experiment)
	}
}

// writeExperimentError maps experiment service errors onto HTTP statuses.
func writeExperimentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrFileNotFound):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "ID of a non-existent file"})
	case errors.Is(err, services.ErrNotFileOwner):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "Only owned files could be used"})
	case errors.Is(err, services.ErrUnknownTargetColumn):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "Target column not in file"})
	case errors.Is(err, services.ErrMalformedCSV):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "Bad-Formatted CSV file"})
	case errors.Is(err, services.ErrExperimentNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "Not found"})
	case errors.Is(err, services.ErrNotExperimentOwner):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "Experiment is not yours"})
	case errors.Is(err, services.ErrExperimentNotLive):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "experiment is not live to be used"})
	case errors.Is(err, services.ErrBadPredictionInput):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ExperimentErrorResponse{Error: "Internal server error"})
	}
}
