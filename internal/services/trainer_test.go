package services_test

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supermaker/experiments-api/internal/models"
	"github.com/supermaker/experiments-api/internal/services"
)

type trainerMocks struct {
	jobs        *services.MockJobQueue
	files       *services.MockFileReader
	experiments *services.MockExperimentReader
	writer      *services.MockExperimentWriter
	uploads     *services.MockBlobStore
	models      *services.MockBlobStore
	kafka       *services.MockKafkaWriter
}

func newTrainerService(ctrl *gomock.Controller) (*services.TrainerService, trainerMocks) {
	m := trainerMocks{
		jobs:        services.NewMockJobQueue(ctrl),
		files:       services.NewMockFileReader(ctrl),
		experiments: services.NewMockExperimentReader(ctrl),
		writer:      services.NewMockExperimentWriter(ctrl),
		uploads:     services.NewMockBlobStore(ctrl),
		models:      services.NewMockBlobStore(ctrl),
		kafka:       services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewTrainerService(
		m.jobs, m.files, m.experiments, m.writer,
		m.uploads, m.models, m.kafka,
		10*time.Millisecond,
	)
	return svc, m
}

func TestTrainerService_TrainOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	fileID := uuid.New()
	experimentID := uuid.New()
	job := &models.TrainingJobDB{JobID: uuid.New(), ExperimentID: experimentID}

	experiment := func() *models.ExperimentDB {
		return &models.ExperimentDB{
			ExperimentID: experimentID,
			UserID:       userID,
			FileID:       fileID,
			TargetCol:    "label",
		}
	}
	fileRecord := &models.FileDB{FileID: fileID, UserID: userID, Path: "/uploads/iris.csv"}

	t.Run("success stores artifact, schema and succeeded status", func(t *testing.T) {
		svc, m := newTrainerService(ctrl)

		csv := "a,b,label\n1,2,x\n3,4,y\n"
		m.experiments.EXPECT().GetByID(gomock.Any(), experimentID).Return(experiment(), nil)
		m.files.EXPECT().GetByID(gomock.Any(), fileID).Return(fileRecord, nil)
		m.uploads.EXPECT().
			Open(gomock.Any(), fileRecord.Path).
			Return(io.NopCloser(strings.NewReader(csv)), nil)
		m.models.EXPECT().
			Save(gomock.Any(), experimentID.String()+".gob", gomock.Any()).
			Return("/models/"+experimentID.String()+".gob", nil)
		m.writer.EXPECT().
			SetModel(gomock.Any(), experimentID,
				"/models/"+experimentID.String()+".gob",
				"Input: a (int64), b (int64) Output: x=0, y=1").
			Return(nil)
		m.jobs.EXPECT().MarkSucceeded(gomock.Any(), job.JobID).Return(nil)
		m.kafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				var event models.TrainingEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.JobSucceeded, event.Status)
				assert.Equal(t, experimentID.String(), event.ExperimentID)
				return nil
			})

		svc.TrainOne(context.Background(), job)
	})

	t.Run("non-numeric feature column fails the job with a reason", func(t *testing.T) {
		svc, m := newTrainerService(ctrl)

		csv := "a,b,label\n1,foo,x\n3,bar,y\n"
		m.experiments.EXPECT().GetByID(gomock.Any(), experimentID).Return(experiment(), nil)
		m.files.EXPECT().GetByID(gomock.Any(), fileID).Return(fileRecord, nil)
		m.uploads.EXPECT().
			Open(gomock.Any(), fileRecord.Path).
			Return(io.NopCloser(strings.NewReader(csv)), nil)
		m.jobs.EXPECT().
			MarkFailed(gomock.Any(), job.JobID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, reason string) error {
				assert.NotEmpty(t, reason)
				return nil
			})
		m.kafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.TrainingEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.JobFailed, event.Status)
				assert.NotEmpty(t, event.Reason)
				return nil
			})

		svc.TrainOne(context.Background(), job)
	})

	t.Run("vanished experiment fails the job", func(t *testing.T) {
		svc, m := newTrainerService(ctrl)

		m.experiments.EXPECT().GetByID(gomock.Any(), experimentID).Return(nil, nil)
		m.jobs.EXPECT().
			MarkFailed(gomock.Any(), job.JobID, "experiment no longer exists").
			Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc.TrainOne(context.Background(), job)
	})

	t.Run("vanished source file fails the job", func(t *testing.T) {
		svc, m := newTrainerService(ctrl)

		m.experiments.EXPECT().GetByID(gomock.Any(), experimentID).Return(experiment(), nil)
		m.files.EXPECT().GetByID(gomock.Any(), fileID).Return(nil, nil)
		m.jobs.EXPECT().
			MarkFailed(gomock.Any(), job.JobID, "source file no longer exists").
			Return(nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		svc.TrainOne(context.Background(), job)
	})
}

func TestTrainerService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("requeues stale jobs once and stops on cancel", func(t *testing.T) {
		svc, m := newTrainerService(ctrl)

		m.jobs.EXPECT().RequeueRunning(gomock.Any()).Return(int64(1), nil)
		m.jobs.EXPECT().ClaimQueued(gomock.Any()).Return(nil, nil).AnyTimes()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		done := make(chan struct{})
		go func() {
			svc.Run(ctx)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("trainer did not stop after context cancellation")
		}
	})
}
