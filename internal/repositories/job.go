package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/models"
)

// TrainingJobRepository manages the durable training job records the
// background trainer works through.
type TrainingJobRepository struct {
	db *sqlx.DB
}

func NewTrainingJobRepository(db *sqlx.DB) *TrainingJobRepository {
	return &TrainingJobRepository{db: db}
}

// Enqueue creates a queued job for the experiment.
func (r *TrainingJobRepository) Enqueue(ctx context.Context, experimentID uuid.UUID) error {
	const query = `
		INSERT INTO training_jobs (experiment_id, status, created_at, updated_at)
		VALUES ($1, 'queued', NOW(), NOW())
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, experimentID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{experimentID},
		"error", err,
	)

	return err
}

// ClaimQueued atomically moves the oldest queued job to running and returns
// it. Returns nil without error when nothing is queued. SKIP LOCKED keeps
// concurrent claimers from picking the same job.
func (r *TrainingJobRepository) ClaimQueued(ctx context.Context) (*models.TrainingJobDB, error) {
	const query = `
		UPDATE training_jobs
		SET status = 'running', updated_at = NOW()
		WHERE job_id = (
			SELECT job_id FROM training_jobs
			WHERE status = 'queued'
			ORDER BY created_at
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING job_id, experiment_id, status, reason, created_at, updated_at
	`

	var job models.TrainingJobDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &job, query)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"job", job.JobID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &job, nil
}

// MarkSucceeded finishes a job successfully.
func (r *TrainingJobRepository) MarkSucceeded(ctx context.Context, jobID uuid.UUID) error {
	return r.setStatus(ctx, jobID, models.JobSucceeded, "")
}

// MarkFailed finishes a job with a failure reason.
func (r *TrainingJobRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, reason string) error {
	return r.setStatus(ctx, jobID, models.JobFailed, reason)
}

func (r *TrainingJobRepository) setStatus(ctx context.Context, jobID uuid.UUID, status, reason string) error {
	const query = `
		UPDATE training_jobs
		SET status = $2, reason = $3, updated_at = NOW()
		WHERE job_id = $1
	`
	args := []any{jobID, status, reason}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

// RequeueRunning moves every running job back to queued. Called once at
// startup so jobs claimed by a process that died get retried.
func (r *TrainingJobRepository) RequeueRunning(ctx context.Context) (int64, error) {
	const query = `
		UPDATE training_jobs
		SET status = 'queued', updated_at = NOW()
		WHERE status = 'running'
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows_affected", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
