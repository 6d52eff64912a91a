package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/supermaker/experiments-api/internal/dataset"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/ml"
	"github.com/supermaker/experiments-api/internal/models"
)

// Error variables
var (
	ErrExperimentNotFound  = errors.New("experiment not found")
	ErrNotExperimentOwner  = errors.New("experiment is not owned by caller")
	ErrUnknownTargetColumn = errors.New("target column not in file")
	ErrExperimentNotLive   = errors.New("experiment is not live to be used")
	ErrBadPredictionInput  = errors.New("bad prediction input")
)

// ExperimentReader defines read-only operations for experiment records.
type ExperimentReader interface {
	GetByID(ctx context.Context, experimentID uuid.UUID) (*models.ExperimentDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExperimentDB, error)
	ListModelPathsByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
}

// ExperimentWriter defines write operations for experiment records.
type ExperimentWriter interface {
	Save(ctx context.Context, experiment *models.ExperimentDB) error
	SetModel(ctx context.Context, experimentID uuid.UUID, modelPath, modelSchema string) error
	SetLive(ctx context.Context, experimentID uuid.UUID, live bool) error
	Delete(ctx context.Context, experimentID uuid.UUID) error
}

// JobEnqueuer creates durable training jobs.
type JobEnqueuer interface {
	Enqueue(ctx context.Context, experimentID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ExperimentService owns the experiment lifecycle up to and after training:
// creation with target-column validation, live toggling, prediction and
// deletion. Training itself runs in TrainerService.
type ExperimentService struct {
	files       FileReader
	reader      ExperimentReader
	writer      ExperimentWriter
	jobs        JobEnqueuer
	uploads     BlobStore
	modelStore  BlobStore
	kafkaWriter KafkaWriter
}

// NewExperimentService creates a new ExperimentService.
func NewExperimentService(
	files FileReader,
	reader ExperimentReader,
	writer ExperimentWriter,
	jobs JobEnqueuer,
	uploads BlobStore,
	modelStore BlobStore,
	kafkaWriter KafkaWriter,
) *ExperimentService {
	return &ExperimentService{
		files:       files,
		reader:      reader,
		writer:      writer,
		jobs:        jobs,
		uploads:     uploads,
		modelStore:  modelStore,
		kafkaWriter: kafkaWriter,
	}
}

// publishTrainingEvent publishes a job state transition to Kafka. A nil
// writer skips publishing; failures are logged and never fail the caller.
func publishTrainingEvent(ctx context.Context, w KafkaWriter, event models.TrainingEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "experiment_id", event.ExperimentID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal training event for Kafka", "experiment_id", event.ExperimentID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ExperimentID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish training event to Kafka", "experiment_id", event.ExperimentID, "error", err)
	} else {
		logger.Log.Infow("Training event published to Kafka", "experiment_id", event.ExperimentID, "status", event.Status)
	}
}

func newTrainingEvent(experimentID, userID uuid.UUID, status, reason string) models.TrainingEvent {
	return models.TrainingEvent{
		EventID:      uuid.NewString(),
		ExperimentID: experimentID.String(),
		UserID:       userID.String(),
		Status:       status,
		Reason:       reason,
		Timestamp:    time.Now().Unix(),
	}
}

// Create validates the source file and target column, records the experiment
// with empty model fields, enqueues a durable training job and returns the
// untrained record immediately.
func (svc *ExperimentService) Create(ctx context.Context, userID, fileID uuid.UUID, title, targetCol string) (*models.ExperimentDB, error) {
	file, err := svc.files.GetByID(ctx, fileID)
	if err != nil {
		logger.Log.Errorw("failed to get source file", "file_id", fileID, "err", err)
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	if file.UserID != userID {
		return nil, ErrNotFileOwner
	}

	rc, err := svc.uploads.Open(ctx, file.Path)
	if err != nil {
		logger.Log.Errorw("failed to open source blob", "file_id", fileID, "err", err)
		return nil, err
	}
	defer rc.Close()

	ds, err := dataset.Parse(rc)
	if err != nil {
		logger.Log.Errorw("failed to parse source csv", "file_id", fileID, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	if !ds.HasColumn(targetCol) {
		return nil, ErrUnknownTargetColumn
	}

	experiment := &models.ExperimentDB{
		ExperimentID:   uuid.New(),
		UserID:         userID,
		FileID:         fileID,
		Title:          title,
		TargetCol:      targetCol,
		TrainingStatus: models.JobQueued,
	}

	if err := svc.writer.Save(ctx, experiment); err != nil {
		logger.Log.Errorw("failed to save experiment", "err", err)
		return nil, err
	}

	if err := svc.jobs.Enqueue(ctx, experiment.ExperimentID); err != nil {
		logger.Log.Errorw("failed to enqueue training job", "experiment_id", experiment.ExperimentID, "err", err)
		return nil, err
	}

	publishTrainingEvent(ctx, svc.kafkaWriter, newTrainingEvent(experiment.ExperimentID, userID, models.JobQueued, ""))

	logger.Log.Infow("experiment created", "experiment_id", experiment.ExperimentID, "user_id", userID)
	return experiment, nil
}

// List returns all experiments owned by the caller.
func (svc *ExperimentService) List(ctx context.Context, userID uuid.UUID) ([]models.ExperimentDB, error) {
	experiments, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list experiments", "user_id", userID, "err", err)
		return nil, err
	}
	return experiments, nil
}

// Get fetches an experiment by id. Reads are not owner-scoped.
func (svc *ExperimentService) Get(ctx context.Context, experimentID uuid.UUID) (*models.ExperimentDB, error) {
	experiment, err := svc.reader.GetByID(ctx, experimentID)
	if err != nil {
		logger.Log.Errorw("failed to get experiment", "experiment_id", experimentID, "err", err)
		return nil, err
	}
	if experiment == nil {
		return nil, ErrExperimentNotFound
	}
	return experiment, nil
}

// ToggleLive flips the prediction gate. Owner only. Toggling twice restores
// the original state.
func (svc *ExperimentService) ToggleLive(ctx context.Context, userID, experimentID uuid.UUID) (*models.ExperimentDB, error) {
	experiment, err := svc.Get(ctx, experimentID)
	if err != nil {
		return nil, err
	}
	if experiment.UserID != userID {
		return nil, ErrNotExperimentOwner
	}

	experiment.Live = !experiment.Live
	if err := svc.writer.SetLive(ctx, experimentID, experiment.Live); err != nil {
		logger.Log.Errorw("failed to toggle live", "experiment_id", experimentID, "err", err)
		return nil, err
	}

	logger.Log.Infow("experiment live toggled", "experiment_id", experimentID, "live", experiment.Live)
	return experiment, nil
}

// Predict loads the persisted model of a live experiment and returns the
// predicted class index for a single input vector. Gated only by the live
// flag and knowledge of the experiment id, not by ownership.
func (svc *ExperimentService) Predict(ctx context.Context, experimentID uuid.UUID, input []any) (string, error) {
	experiment, err := svc.Get(ctx, experimentID)
	if err != nil {
		return "", err
	}
	if !experiment.Live {
		return "", ErrExperimentNotLive
	}

	vec := make([]float64, len(input))
	for i, v := range input {
		f, err := toFloat(v)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadPredictionInput, err)
		}
		vec[i] = f
	}

	rc, err := svc.modelStore.Open(ctx, experiment.ModelPath)
	if err != nil {
		logger.Log.Errorw("failed to open model artifact", "experiment_id", experimentID, "err", err)
		return "", err
	}
	defer rc.Close()

	model, err := ml.Decode(rc)
	if err != nil {
		logger.Log.Errorw("failed to decode model artifact", "experiment_id", experimentID, "err", err)
		return "", err
	}

	class, err := model.Predict(vec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPredictionInput, err)
	}

	return strconv.Itoa(class), nil
}

// toFloat accepts the JSON-decoded input element kinds: numbers and
// numeric strings.
func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return 0, fmt.Errorf("unsupported input value %v", v)
	}
}

// Delete removes the model artifact, then the record. Owner only. An
// artifact that was never written (training pending or failed) is skipped.
func (svc *ExperimentService) Delete(ctx context.Context, userID, experimentID uuid.UUID) error {
	experiment, err := svc.Get(ctx, experimentID)
	if err != nil {
		return err
	}
	if experiment.UserID != userID {
		return ErrNotExperimentOwner
	}

	if err := svc.modelStore.Remove(ctx, experiment.ModelPath); err != nil {
		logger.Log.Errorw("failed to remove model artifact", "experiment_id", experimentID, "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, experimentID); err != nil {
		logger.Log.Errorw("failed to delete experiment record", "experiment_id", experimentID, "err", err)
		return err
	}

	logger.Log.Infow("experiment deleted", "experiment_id", experimentID, "user_id", userID)
	return nil
}
