package services_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supermaker/experiments-api/internal/ml"
	"github.com/supermaker/experiments-api/internal/models"
	"github.com/supermaker/experiments-api/internal/services"
)

type experimentMocks struct {
	files   *services.MockFileReader
	reader  *services.MockExperimentReader
	writer  *services.MockExperimentWriter
	jobs    *services.MockJobEnqueuer
	uploads *services.MockBlobStore
	models  *services.MockBlobStore
	kafka   *services.MockKafkaWriter
}

func newExperimentService(ctrl *gomock.Controller) (*services.ExperimentService, experimentMocks) {
	m := experimentMocks{
		files:   services.NewMockFileReader(ctrl),
		reader:  services.NewMockExperimentReader(ctrl),
		writer:  services.NewMockExperimentWriter(ctrl),
		jobs:    services.NewMockJobEnqueuer(ctrl),
		uploads: services.NewMockBlobStore(ctrl),
		models:  services.NewMockBlobStore(ctrl),
		kafka:   services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewExperimentService(m.files, m.reader, m.writer, m.jobs, m.uploads, m.models, m.kafka)
	return svc, m
}

func TestExperimentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	fileID := uuid.New()
	fileRecord := &models.FileDB{FileID: fileID, UserID: userID, Path: "/uploads/iris.csv"}
	csv := "a,b,label\n1,2,x\n3,4,y\n"

	t.Run("success queues a job and publishes", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.files.EXPECT().GetByID(gomock.Any(), fileID).Return(fileRecord, nil)
		m.uploads.EXPECT().
			Open(gomock.Any(), fileRecord.Path).
			Return(io.NopCloser(strings.NewReader(csv)), nil)
		m.writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, experiment *models.ExperimentDB) error {
				assert.Equal(t, userID, experiment.UserID)
				assert.Equal(t, "label", experiment.TargetCol)
				assert.Empty(t, experiment.ModelPath)
				return nil
			})
		m.jobs.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		experiment, err := svc.Create(context.Background(), userID, fileID, "iris-baseline", "label")
		require.NoError(t, err)
		assert.Equal(t, models.JobQueued, experiment.TrainingStatus)
		assert.False(t, experiment.Live)
	})

	t.Run("unknown file", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.files.EXPECT().GetByID(gomock.Any(), fileID).Return(nil, nil)

		_, err := svc.Create(context.Background(), userID, fileID, "t", "label")
		assert.ErrorIs(t, err, services.ErrFileNotFound)
	})

	t.Run("foreign file", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.files.EXPECT().GetByID(gomock.Any(), fileID).Return(fileRecord, nil)

		_, err := svc.Create(context.Background(), uuid.New(), fileID, "t", "label")
		assert.ErrorIs(t, err, services.ErrNotFileOwner)
	})

	t.Run("unknown target column", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.files.EXPECT().GetByID(gomock.Any(), fileID).Return(fileRecord, nil)
		m.uploads.EXPECT().
			Open(gomock.Any(), fileRecord.Path).
			Return(io.NopCloser(strings.NewReader(csv)), nil)

		_, err := svc.Create(context.Background(), userID, fileID, "t", "missing")
		assert.ErrorIs(t, err, services.ErrUnknownTargetColumn)
	})
}

func TestExperimentService_ToggleLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	experimentID := uuid.New()

	t.Run("flips off to on", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.reader.EXPECT().
			GetByID(gomock.Any(), experimentID).
			Return(&models.ExperimentDB{ExperimentID: experimentID, UserID: ownerID, Live: false}, nil)
		m.writer.EXPECT().
			SetLive(gomock.Any(), experimentID, true).
			Return(nil)

		experiment, err := svc.ToggleLive(context.Background(), ownerID, experimentID)
		require.NoError(t, err)
		assert.True(t, experiment.Live)
	})

	t.Run("flips on to off", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.reader.EXPECT().
			GetByID(gomock.Any(), experimentID).
			Return(&models.ExperimentDB{ExperimentID: experimentID, UserID: ownerID, Live: true}, nil)
		m.writer.EXPECT().
			SetLive(gomock.Any(), experimentID, false).
			Return(nil)

		experiment, err := svc.ToggleLive(context.Background(), ownerID, experimentID)
		require.NoError(t, err)
		assert.False(t, experiment.Live)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.reader.EXPECT().
			GetByID(gomock.Any(), experimentID).
			Return(&models.ExperimentDB{ExperimentID: experimentID, UserID: ownerID}, nil)

		_, err := svc.ToggleLive(context.Background(), uuid.New(), experimentID)
		assert.ErrorIs(t, err, services.ErrNotExperimentOwner)
	})
}

// trainedModel fits a two-class nearest-centroid model and returns its
// encoded artifact.
func trainedModel(t *testing.T) []byte {
	t.Helper()

	model := &ml.NearestCentroid{}
	require.NoError(t, model.Fit([][]float64{{1, 2}, {3, 4}}, []int{0, 1}))

	var buf bytes.Buffer
	require.NoError(t, model.Encode(&buf))
	return buf.Bytes()
}

func TestExperimentService_Predict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	experimentID := uuid.New()
	artifact := trainedModel(t)

	liveRecord := func() *models.ExperimentDB {
		return &models.ExperimentDB{
			ExperimentID: experimentID,
			UserID:       uuid.New(),
			Live:         true,
			ModelPath:    "/models/" + experimentID.String() + ".gob",
		}
	}

	t.Run("predicts nearest class", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		record := liveRecord()
		m.reader.EXPECT().GetByID(gomock.Any(), experimentID).Return(record, nil)
		m.models.EXPECT().
			Open(gomock.Any(), record.ModelPath).
			Return(io.NopCloser(bytes.NewReader(artifact)), nil)

		output, err := svc.Predict(context.Background(), experimentID, []any{1.1, 2.1})
		require.NoError(t, err)
		assert.Equal(t, "0", output)
	})

	t.Run("accepts numeric strings", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		record := liveRecord()
		m.reader.EXPECT().GetByID(gomock.Any(), experimentID).Return(record, nil)
		m.models.EXPECT().
			Open(gomock.Any(), record.ModelPath).
			Return(io.NopCloser(bytes.NewReader(artifact)), nil)

		output, err := svc.Predict(context.Background(), experimentID, []any{"3.2", "3.9"})
		require.NoError(t, err)
		assert.Equal(t, "1", output)
	})

	t.Run("not live", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		record := liveRecord()
		record.Live = false
		m.reader.EXPECT().GetByID(gomock.Any(), experimentID).Return(record, nil)

		_, err := svc.Predict(context.Background(), experimentID, []any{1.0, 2.0})
		assert.ErrorIs(t, err, services.ErrExperimentNotLive)
	})

	t.Run("non-numeric input", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.reader.EXPECT().GetByID(gomock.Any(), experimentID).Return(liveRecord(), nil)

		_, err := svc.Predict(context.Background(), experimentID, []any{"abc", 2.0})
		assert.ErrorIs(t, err, services.ErrBadPredictionInput)
	})

	t.Run("wrong input width", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		record := liveRecord()
		m.reader.EXPECT().GetByID(gomock.Any(), experimentID).Return(record, nil)
		m.models.EXPECT().
			Open(gomock.Any(), record.ModelPath).
			Return(io.NopCloser(bytes.NewReader(artifact)), nil)

		_, err := svc.Predict(context.Background(), experimentID, []any{1.0})
		assert.ErrorIs(t, err, services.ErrBadPredictionInput)
	})
}

func TestExperimentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	experimentID := uuid.New()

	t.Run("removes artifact then record", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.reader.EXPECT().
			GetByID(gomock.Any(), experimentID).
			Return(&models.ExperimentDB{ExperimentID: experimentID, UserID: ownerID, ModelPath: "/models/m.gob"}, nil)
		gomock.InOrder(
			m.models.EXPECT().Remove(gomock.Any(), "/models/m.gob").Return(nil),
			m.writer.EXPECT().Delete(gomock.Any(), experimentID).Return(nil),
		)

		assert.NoError(t, svc.Delete(context.Background(), ownerID, experimentID))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc, m := newExperimentService(ctrl)

		m.reader.EXPECT().
			GetByID(gomock.Any(), experimentID).
			Return(&models.ExperimentDB{ExperimentID: experimentID, UserID: ownerID}, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), experimentID), services.ErrNotExperimentOwner)
	})
}
