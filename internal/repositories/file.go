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

type FileReadRepository struct {
	db *sqlx.DB
}

func NewFileReadRepository(db *sqlx.DB) *FileReadRepository {
	return &FileReadRepository{db: db}
}

// GetByID returns a file by primary key regardless of owner, nil without
// error if absent. Ownership checks belong to the service layer.
func (r *FileReadRepository) GetByID(ctx context.Context, fileID uuid.UUID) (*models.FileDB, error) {
	const query = `
		SELECT file_id, user_id, title, path, created_at
		FROM files
		WHERE file_id = $1
	`

	var file models.FileDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &file, query, fileID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fileID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &file, nil
}

// ListByUserID returns all files owned by the given user, newest first.
func (r *FileReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FileDB, error) {
	const query = `
		SELECT file_id, user_id, title, path, created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var files []models.FileDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &files, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(files),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return files, nil
}

type FileWriteRepository struct {
	db *sqlx.DB
}

func NewFileWriteRepository(db *sqlx.DB) *FileWriteRepository {
	return &FileWriteRepository{db: db}
}

// Save inserts the file row and fills in the database-assigned timestamp.
func (r *FileWriteRepository) Save(ctx context.Context, file *models.FileDB) error {
	const query = `
		INSERT INTO files (file_id, user_id, title, path, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	args := []any{file.FileID, file.UserID, file.Title, file.Path}

	err := sqlx.GetContext(ctx, ext(ctx, r.db), &file.CreatedAt, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update sets a file's title and blob path.
func (r *FileWriteRepository) Update(ctx context.Context, fileID uuid.UUID, title, path string) error {
	const query = `
		UPDATE files
		SET title = $2, path = $3
		WHERE file_id = $1
	`
	args := []any{fileID, title, path}

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

func (r *FileWriteRepository) Delete(ctx context.Context, fileID uuid.UUID) error {
	const query = `DELETE FROM files WHERE file_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, fileID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{fileID},
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
