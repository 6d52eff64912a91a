package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/models"
)

// ErrAccountNotFound is returned when the authenticated user's row is gone.
var ErrAccountNotFound = errors.New("account not found")

// UserService serves the account surface: profile reads and account
// deletion with cascading cleanup of owned blobs.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	experiments ExperimentReader
	uploads     BlobStore
	modelStore  BlobStore
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, experiments ExperimentReader, uploads, modelStore BlobStore) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		experiments: experiments,
		uploads:     uploads,
		modelStore:  modelStore,
	}
}

// Me returns the caller's user record.
func (svc *UserService) Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}
	return user, nil
}

// Delete removes the caller's account. File and experiment rows cascade via
// foreign keys; blobs are removed here first. A missing blob is not fatal.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrAccountNotFound
	}

	modelPaths, err := svc.experiments.ListModelPathsByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list model artifacts", "user_id", userID, "err", err)
		return err
	}
	for _, path := range modelPaths {
		if err := svc.modelStore.Remove(ctx, path); err != nil {
			logger.Log.Warnw("failed to remove model artifact", "path", path, "err", err)
		}
	}

	if err := svc.uploads.RemoveAll(ctx, userID.String()); err != nil {
		logger.Log.Warnw("failed to remove upload tree", "user_id", userID, "err", err)
	}

	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}

	logger.Log.Infow("account deleted", "user_id", userID)
	return nil
}
