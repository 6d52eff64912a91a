package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/supermaker/experiments-api/internal/models"
	"github.com/supermaker/experiments-api/internal/services"
)

func TestUserService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockExperiments := services.NewMockExperimentReader(ctrl)
	mockUploads := services.NewMockBlobStore(ctrl)
	mockModels := services.NewMockBlobStore(ctrl)

	svc := services.NewUserService(mockReader, mockWriter, mockExperiments, mockUploads, mockModels)

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Username: "alice"}, nil)

		user, err := svc.Me(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("account not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		_, err := svc.Me(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrAccountNotFound)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, errors.New("db error"))

		_, err := svc.Me(context.Background(), userID)
		assert.EqualError(t, err, "db error")
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("removes artifacts, uploads and the row", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockExperiments := services.NewMockExperimentReader(ctrl)
		mockUploads := services.NewMockBlobStore(ctrl)
		mockModels := services.NewMockBlobStore(ctrl)

		svc := services.NewUserService(mockReader, mockWriter, mockExperiments, mockUploads, mockModels)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)
		mockExperiments.EXPECT().
			ListModelPathsByUserID(gomock.Any(), userID).
			Return([]string{"/models/a.gob", "/models/b.gob"}, nil)
		mockModels.EXPECT().
			Remove(gomock.Any(), "/models/a.gob").
			Return(nil)
		mockModels.EXPECT().
			Remove(gomock.Any(), "/models/b.gob").
			Return(nil)
		mockUploads.EXPECT().
			RemoveAll(gomock.Any(), userID.String()).
			Return(nil)
		mockWriter.EXPECT().
			Delete(gomock.Any(), userID).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), userID))
	})

	t.Run("missing blobs do not block deletion", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockExperiments := services.NewMockExperimentReader(ctrl)
		mockUploads := services.NewMockBlobStore(ctrl)
		mockModels := services.NewMockBlobStore(ctrl)

		svc := services.NewUserService(mockReader, mockWriter, mockExperiments, mockUploads, mockModels)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID}, nil)
		mockExperiments.EXPECT().
			ListModelPathsByUserID(gomock.Any(), userID).
			Return([]string{"/models/a.gob"}, nil)
		mockModels.EXPECT().
			Remove(gomock.Any(), "/models/a.gob").
			Return(errors.New("permission denied"))
		mockUploads.EXPECT().
			RemoveAll(gomock.Any(), userID.String()).
			Return(errors.New("permission denied"))
		mockWriter.EXPECT().
			Delete(gomock.Any(), userID).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), userID))
	})

	t.Run("account not found", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockWriter := services.NewMockUserWriter(ctrl)
		mockExperiments := services.NewMockExperimentReader(ctrl)
		mockUploads := services.NewMockBlobStore(ctrl)
		mockModels := services.NewMockBlobStore(ctrl)

		svc := services.NewUserService(mockReader, mockWriter, mockExperiments, mockUploads, mockModels)

		mockReader.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), userID), services.ErrAccountNotFound)
	})
}
