package models

import (
	"time"

	"github.com/google/uuid"
)

// Training job states. A job is durable: it survives a process restart and
// is requeued if it was claimed but never finished.
const (
	JobQueued    = "queued"
	JobRunning   = "running"
	JobSucceeded = "succeeded"
	JobFailed    = "failed"
)

// ExperimentDB represents an experiment record in the database.
// ModelPath and ModelSchema stay empty until training succeeds.
// TrainingStatus/TrainingReason are joined in from the experiment's job row.
type ExperimentDB struct {
	ExperimentID   uuid.UUID `json:"id" db:"experiment_id"`                // Primary key
	UserID         uuid.UUID `json:"-" db:"user_id"`                       // Owning user
	FileID         uuid.UUID `json:"file_id" db:"file_id"`                 // Source CSV file
	Title          string    `json:"title" db:"title"`                     // User-supplied title
	TargetCol      string    `json:"target_col" db:"target_col"`           // Target column name
	ModelPath      string    `json:"-" db:"model_path"`                    // Serialized model location
	ModelSchema    string    `json:"model_schema" db:"model_schema"`       // Human-readable input/output schema
	Live           bool      `json:"live" db:"live"`                       // Prediction gate
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	TrainingStatus string    `json:"training_status" db:"training_status"` // queued / running / succeeded / failed
	TrainingReason string    `json:"training_reason" db:"training_reason"` // Failure reason, empty otherwise
}

// TrainingJobDB represents a durable training job record.
type TrainingJobDB struct {
	JobID        uuid.UUID `json:"id" db:"job_id"`
	ExperimentID uuid.UUID `json:"experiment_id" db:"experiment_id"`
	Status       string    `json:"status" db:"status"`
	Reason       string    `json:"reason" db:"reason"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// TrainingEvent is published to Kafka on every job state transition.
type TrainingEvent struct {
	EventID      string `json:"event_id"`
	ExperimentID string `json:"experiment_id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}
