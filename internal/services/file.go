package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/dataset"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/models"
)

// Error variables
var (
	ErrFileNotFound        = errors.New("file not found")
	ErrNotFileOwner        = errors.New("file is not owned by caller")
	ErrUnsupportedFileType = errors.New("unsupported file type, only .csv files are accepted")
	ErrInvalidFilename     = errors.New("invalid filename")
	ErrMalformedCSV        = errors.New("bad-formatted csv file")
)

var filenameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// FileReader defines read-only operations for file records.
type FileReader interface {
	GetByID(ctx context.Context, fileID uuid.UUID) (*models.FileDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FileDB, error)
}

// FileWriter defines write operations for file records.
type FileWriter interface {
	Save(ctx context.Context, file *models.FileDB) error
	Update(ctx context.Context, fileID uuid.UUID, title, path string) error
	Delete(ctx context.Context, fileID uuid.UUID) error
}

// BlobStore defines the filesystem operations services need.
type BlobStore interface {
	Save(ctx context.Context, key string, reader io.Reader) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
	RemoveAll(ctx context.Context, key string) error
}

// FileService owns the CSV file lifecycle: validated upload, owner-scoped
// reads, replacement and deletion.
type FileService struct {
	reader FileReader
	writer FileWriter
	store  BlobStore
}

// NewFileService creates a new FileService instance.
func NewFileService(reader FileReader, writer FileWriter, store BlobStore) *FileService {
	return &FileService{
		reader: reader,
		writer: writer,
		store:  store,
	}
}

// checkCSV validates the upload: the basename must end in .csv, contain only
// alphanumerics, underscores, periods and hyphens, and the content must parse
// as CSV with at least one data row. Returns the cleaned basename.
func checkCSV(filename string, content []byte) (string, error) {
	name := filepath.Base(filename)

	if !strings.HasSuffix(name, ".csv") {
		return "", ErrUnsupportedFileType
	}
	if !filenameRe.MatchString(name) {
		return "", ErrInvalidFilename
	}

	if _, err := dataset.Parse(bytes.NewReader(content)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	return name, nil
}

// Upload validates and stores a CSV under the owner's subtree and records it.
// The blob is written before the row is committed, so a crash in between can
// strand an orphan blob.
func (svc *FileService) Upload(ctx context.Context, userID uuid.UUID, title, filename string, content []byte) (*models.FileDB, error) {
	name, err := checkCSV(filename, content)
	if err != nil {
		logger.Log.Errorw("upload rejected", "filename", filename, "err", err)
		return nil, err
	}

	path, err := svc.store.Save(ctx, userID.String()+"/"+name, bytes.NewReader(content))
	if err != nil {
		logger.Log.Errorw("failed to write blob", "filename", name, "err", err)
		return nil, err
	}

	file := &models.FileDB{
		FileID: uuid.New(),
		UserID: userID,
		Title:  title,
		Path:   path,
	}

	if err := svc.writer.Save(ctx, file); err != nil {
		logger.Log.Errorw("failed to save file record", "filename", name, "err", err)
		return nil, err
	}

	logger.Log.Infow("file uploaded", "file_id", file.FileID, "user_id", userID)
	return file, nil
}

// List returns all files owned by the caller.
func (svc *FileService) List(ctx context.Context, userID uuid.UUID) ([]models.FileDB, error) {
	files, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list files", "user_id", userID, "err", err)
		return nil, err
	}
	return files, nil
}

// Get fetches a file by id. Reads are not owner-scoped.
func (svc *FileService) Get(ctx context.Context, fileID uuid.UUID) (*models.FileDB, error) {
	file, err := svc.reader.GetByID(ctx, fileID)
	if err != nil {
		logger.Log.Errorw("failed to get file", "file_id", fileID, "err", err)
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	return file, nil
}

// Download streams the blob to its owner. Non-owners get ErrNotFileOwner.
func (svc *FileService) Download(ctx context.Context, userID, fileID uuid.UUID) (io.ReadCloser, string, error) {
	file, err := svc.Get(ctx, fileID)
	if err != nil {
		return nil, "", err
	}
	if file.UserID != userID {
		return nil, "", ErrNotFileOwner
	}

	rc, err := svc.store.Open(ctx, file.Path)
	if err != nil {
		logger.Log.Errorw("failed to open blob", "file_id", fileID, "err", err)
		return nil, "", err
	}

	return rc, filepath.Base(file.Path), nil
}

// Update patches title and/or content. Owner only. When new content is
// supplied the old blob is removed before the replacement is written; the
// filesystem and the row update are not wrapped in one transaction.
func (svc *FileService) Update(ctx context.Context, userID, fileID uuid.UUID, title *string, filename string, content []byte) (*models.FileDB, error) {
	file, err := svc.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file.UserID != userID {
		return nil, ErrNotFileOwner
	}

	if title != nil {
		file.Title = *title
	}

	if content != nil {
		name, err := checkCSV(filename, content)
		if err != nil {
			logger.Log.Errorw("replacement rejected", "filename", filename, "err", err)
			return nil, err
		}

		if err := svc.store.Remove(ctx, file.Path); err != nil {
			logger.Log.Errorw("failed to remove old blob", "file_id", fileID, "err", err)
			return nil, err
		}

		path, err := svc.store.Save(ctx, userID.String()+"/"+name, bytes.NewReader(content))
		if err != nil {
			logger.Log.Errorw("failed to write replacement blob", "file_id", fileID, "err", err)
			return nil, err
		}
		file.Path = path
	}

	if err := svc.writer.Update(ctx, fileID, file.Title, file.Path); err != nil {
		logger.Log.Errorw("failed to update file record", "file_id", fileID, "err", err)
		return nil, err
	}

	return file, nil
}

// Delete removes the blob, then the record. Owner only. A blob that is
// already gone is treated as deleted.
func (svc *FileService) Delete(ctx context.Context, userID, fileID uuid.UUID) error {
	file, err := svc.Get(ctx, fileID)
	if err != nil {
		return err
	}
	if file.UserID != userID {
		return ErrNotFileOwner
	}

	if err := svc.store.Remove(ctx, file.Path); err != nil {
		logger.Log.Errorw("failed to remove blob", "file_id", fileID, "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, fileID); err != nil {
		logger.Log.Errorw("failed to delete file record", "file_id", fileID, "err", err)
		return err
	}

	logger.Log.Infow("file deleted", "file_id", fileID, "user_id", userID)
	return nil
}
