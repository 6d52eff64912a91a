package services

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/supermaker/experiments-api/internal/dataset"
	"github.com/supermaker/experiments-api/internal/logger"
	"github.com/supermaker/experiments-api/internal/ml"
	"github.com/supermaker/experiments-api/internal/models"
)

// JobQueue defines the durable job operations the trainer drives.
type JobQueue interface {
	ClaimQueued(ctx context.Context) (*models.TrainingJobDB, error)
	MarkSucceeded(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, reason string) error
	RequeueRunning(ctx context.Context) (int64, error)
}

// TrainerService polls the durable job queue and trains one experiment at a
// time: parse the source CSV, encode the target, fit the classifier,
// persist the artifact and flip the job to succeeded or failed(reason).
// Training failures are recorded on the job, never swallowed.
type TrainerService struct {
	jobs        JobQueue
	files       FileReader
	experiments ExperimentReader
	writer      ExperimentWriter
	uploads     BlobStore
	modelStore  BlobStore
	kafkaWriter KafkaWriter
	interval    time.Duration
}

// NewTrainerService creates a new TrainerService.
func NewTrainerService(
	jobs JobQueue,
	files FileReader,
	experiments ExperimentReader,
	writer ExperimentWriter,
	uploads BlobStore,
	modelStore BlobStore,
	kafkaWriter KafkaWriter,
	interval time.Duration,
) *TrainerService {
	return &TrainerService{
		jobs:        jobs,
		files:       files,
		experiments: experiments,
		writer:      writer,
		uploads:     uploads,
		modelStore:  modelStore,
		kafkaWriter: kafkaWriter,
		interval:    interval,
	}
}

// Run blocks until ctx is cancelled. Jobs left running by a dead process are
// requeued once at startup, then the queue is drained on every tick.
func (svc *TrainerService) Run(ctx context.Context) {
	if n, err := svc.jobs.RequeueRunning(ctx); err != nil {
		logger.Log.Errorw("failed to requeue stale jobs", "err", err)
	} else if n > 0 {
		logger.Log.Infow("requeued stale training jobs", "count", n)
	}

	ticker := time.NewTicker(svc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("trainer stopped")
			return
		case <-ticker.C:
			svc.drain(ctx)
		}
	}
}

// drain claims and trains queued jobs until the queue is empty.
func (svc *TrainerService) drain(ctx context.Context) {
	for {
		job, err := svc.jobs.ClaimQueued(ctx)
		if err != nil {
			logger.Log.Errorw("failed to claim training job", "err", err)
			return
		}
		if job == nil {
			return
		}
		svc.TrainOne(ctx, job)
	}
}

// TrainOne executes a single claimed job to completion.
func (svc *TrainerService) TrainOne(ctx context.Context, job *models.TrainingJobDB) {
	experiment, err := svc.experiments.GetByID(ctx, job.ExperimentID)
	if err != nil {
		svc.fail(ctx, job, nil, "failed to load experiment: "+err.Error())
		return
	}
	if experiment == nil {
		svc.fail(ctx, job, nil, "experiment no longer exists")
		return
	}

	file, err := svc.files.GetByID(ctx, experiment.FileID)
	if err != nil {
		svc.fail(ctx, job, experiment, "failed to load source file: "+err.Error())
		return
	}
	if file == nil {
		svc.fail(ctx, job, experiment, "source file no longer exists")
		return
	}

	rc, err := svc.uploads.Open(ctx, file.Path)
	if err != nil {
		svc.fail(ctx, job, experiment, "failed to open source blob: "+err.Error())
		return
	}
	ds, err := dataset.Parse(rc)
	rc.Close()
	if err != nil {
		svc.fail(ctx, job, experiment, "failed to parse source csv: "+err.Error())
		return
	}

	features, labels, featureCols, dtypes, err := ds.Split(experiment.TargetCol)
	if err != nil {
		svc.fail(ctx, job, experiment, err.Error())
		return
	}

	var encoder ml.LabelEncoder
	encoded := encoder.FitTransform(labels)

	var classifier ml.NearestCentroid
	if err := classifier.Fit(features, encoded); err != nil {
		svc.fail(ctx, job, experiment, "failed to fit classifier: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := classifier.Encode(&buf); err != nil {
		svc.fail(ctx, job, experiment, "failed to serialize model: "+err.Error())
		return
	}

	// Artifacts are keyed by experiment id so same-titled experiments
	// never overwrite each other.
	modelPath, err := svc.modelStore.Save(ctx, experiment.ExperimentID.String()+".gob", &buf)
	if err != nil {
		svc.fail(ctx, job, experiment, "failed to store model artifact: "+err.Error())
		return
	}

	schema := ml.SchemaString(featureCols, dtypes, encoder.Classes)

	if err := svc.writer.SetModel(ctx, experiment.ExperimentID, modelPath, schema); err != nil {
		svc.fail(ctx, job, experiment, "failed to record model fields: "+err.Error())
		return
	}

	if err := svc.jobs.MarkSucceeded(ctx, job.JobID); err != nil {
		logger.Log.Errorw("failed to mark job succeeded", "job_id", job.JobID, "err", err)
		return
	}

	publishTrainingEvent(ctx, svc.kafkaWriter, newTrainingEvent(job.ExperimentID, experiment.UserID, models.JobSucceeded, ""))
	logger.Log.Infow("training succeeded", "experiment_id", job.ExperimentID, "schema", schema)
}

func (svc *TrainerService) fail(ctx context.Context, job *models.TrainingJobDB, experiment *models.ExperimentDB, reason string) {
	logger.Log.Errorw("training failed", "job_id", job.JobID, "experiment_id", job.ExperimentID, "reason", reason)

	if err := svc.jobs.MarkFailed(ctx, job.JobID, reason); err != nil {
		logger.Log.Errorw("failed to mark job failed", "job_id", job.JobID, "err", err)
	}

	userID := uuid.Nil
	if experiment != nil {
		userID = experiment.UserID
	}
	publishTrainingEvent(ctx, svc.kafkaWriter, newTrainingEvent(job.ExperimentID, userID, models.JobFailed, reason))
}
