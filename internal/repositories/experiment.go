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

// experimentColumns joins the durable job record in so that every read of
// an experiment carries its training status and failure reason.
const experimentColumns = `
	e.experiment_id, e.user_id, e.file_id, e.title, e.target_col,
	e.model_path, e.model_schema, e.live, e.created_at,
	COALESCE(j.status, 'queued') AS training_status,
	COALESCE(j.reason, '') AS training_reason
`

type ExperimentReadRepository struct {
	db *sqlx.DB
}

func NewExperimentReadRepository(db *sqlx.DB) *ExperimentReadRepository {
	return &ExperimentReadRepository{db: db}
}

// GetByID returns an experiment by primary key regardless of owner, nil
// without error if absent.
func (r *ExperimentReadRepository) GetByID(ctx context.Context, experimentID uuid.UUID) (*models.ExperimentDB, error) {
	const query = `
		SELECT ` + experimentColumns + `
		FROM experiments e
		LEFT JOIN training_jobs j ON j.experiment_id = e.experiment_id
		WHERE e.experiment_id = $1
	`

	var experiment models.ExperimentDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &experiment, query, experimentID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{experimentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &experiment, nil
}

// ListByUserID returns all experiments owned by the given user, newest first.
func (r *ExperimentReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExperimentDB, error) {
	const query = `
		SELECT ` + experimentColumns + `
		FROM experiments e
		LEFT JOIN training_jobs j ON j.experiment_id = e.experiment_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
	`

	var experiments []models.ExperimentDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &experiments, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(experiments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return experiments, nil
}

// ListModelPathsByUserID returns every non-empty model artifact path owned
// by the user. Used to clean up blobs before the account row is deleted.
func (r *ExperimentReadRepository) ListModelPathsByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const query = `
		SELECT model_path
		FROM experiments
		WHERE user_id = $1 AND model_path <> ''
	`

	var paths []string
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &paths, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(paths),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return paths, nil
}

type ExperimentWriteRepository struct {
	db *sqlx.DB
}

func NewExperimentWriteRepository(db *sqlx.DB) *ExperimentWriteRepository {
	return &ExperimentWriteRepository{db: db}
}

// Save inserts the experiment row with empty model fields and fills in the
// database-assigned timestamp.
func (r *ExperimentWriteRepository) Save(ctx context.Context, experiment *models.ExperimentDB) error {
	const query = `
		INSERT INTO experiments (experiment_id, user_id, file_id, title, target_col)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	args := []any{
		experiment.ExperimentID, experiment.UserID, experiment.FileID,
		experiment.Title, experiment.TargetCol,
	}

	err := sqlx.GetContext(ctx, ext(ctx, r.db), &experiment.CreatedAt, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SetModel records the trained artifact location and schema string.
func (r *ExperimentWriteRepository) SetModel(ctx context.Context, experimentID uuid.UUID, modelPath, modelSchema string) error {
	const query = `
		UPDATE experiments
		SET model_path = $2, model_schema = $3
		WHERE experiment_id = $1
	`
	args := []any{experimentID, modelPath, modelSchema}

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

// SetLive flips the prediction gate.
func (r *ExperimentWriteRepository) SetLive(ctx context.Context, experimentID uuid.UUID, live bool) error {
	const query = `
		UPDATE experiments
		SET live = $2
		WHERE experiment_id = $1
	`
	args := []any{experimentID, live}

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

func (r *ExperimentWriteRepository) Delete(ctx context.Context, experimentID uuid.UUID) error {
	const query = `DELETE FROM experiments WHERE experiment_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, experimentID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{experimentID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
