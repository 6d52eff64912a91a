package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supermaker/experiments-api/internal/models"
)

func TestTrainingJobRepository_EnqueueAndClaim(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "alice")
	file := createTestFile(t, db, userID, "iris.csv")
	experiment := createTestExperiment(t, db, userID, file.FileID, "iris study")

	jobs := NewTrainingJobRepository(db)
	ctx := context.Background()

	require.NoError(t, jobs.Enqueue(ctx, experiment.ExperimentID))

	job, err := jobs.ClaimQueued(ctx)
	assert.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, experiment.ExperimentID, job.ExperimentID)
	assert.Equal(t, models.JobRunning, job.Status)

	// Nothing queued anymore
	job, err = jobs.ClaimQueued(ctx)
	assert.NoError(t, err)
	assert.Nil(t, job)
}

func TestTrainingJobRepository_ClaimOrder(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "bob")
	file := createTestFile(t, db, userID, "iris.csv")
	first := createTestExperiment(t, db, userID, file.FileID, "first")
	second := createTestExperiment(t, db, userID, file.FileID, "second")

	jobs := NewTrainingJobRepository(db)
	ctx := context.Background()

	require.NoError(t, jobs.Enqueue(ctx, first.ExperimentID))
	require.NoError(t, jobs.Enqueue(ctx, second.ExperimentID))

	job, err := jobs.ClaimQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, first.ExperimentID, job.ExperimentID)

	job, err = jobs.ClaimQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, second.ExperimentID, job.ExperimentID)
}

func TestTrainingJobRepository_MarkSucceeded(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "carol")
	file := createTestFile(t, db, userID, "iris.csv")
	experiment := createTestExperiment(t, db, userID, file.FileID, "iris study")

	jobs := NewTrainingJobRepository(db)
	ctx := context.Background()

	require.NoError(t, jobs.Enqueue(ctx, experiment.ExperimentID))
	job, err := jobs.ClaimQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.NoError(t, jobs.MarkSucceeded(ctx, job.JobID))

	var got models.TrainingJobDB
	err = db.Get(&got, "SELECT job_id, experiment_id, status, reason, created_at, updated_at FROM training_jobs WHERE job_id=$1", job.JobID)
	require.NoError(t, err)
	assert.Equal(t, models.JobSucceeded, got.Status)
	assert.Empty(t, got.Reason)
}

func TestTrainingJobRepository_MarkFailed(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "dave")
	file := createTestFile(t, db, userID, "iris.csv")
	experiment := createTestExperiment(t, db, userID, file.FileID, "iris study")

	jobs := NewTrainingJobRepository(db)
	ctx := context.Background()

	require.NoError(t, jobs.Enqueue(ctx, experiment.ExperimentID))
	job, err := jobs.ClaimQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.NoError(t, jobs.MarkFailed(ctx, job.JobID, "feature column is not numeric"))

	var got models.TrainingJobDB
	err = db.Get(&got, "SELECT job_id, experiment_id, status, reason, created_at, updated_at FROM training_jobs WHERE job_id=$1", job.JobID)
	require.NoError(t, err)
	assert.Equal(t, models.JobFailed, got.Status)
	assert.Equal(t, "feature column is not numeric", got.Reason)
}

func TestTrainingJobRepository_RequeueRunning(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	userID := createTestUser(t, db, "erin")
	file := createTestFile(t, db, userID, "iris.csv")
	first := createTestExperiment(t, db, userID, file.FileID, "first")
	second := createTestExperiment(t, db, userID, file.FileID, "second")

	jobs := NewTrainingJobRepository(db)
	ctx := context.Background()

	require.NoError(t, jobs.Enqueue(ctx, first.ExperimentID))
	require.NoError(t, jobs.Enqueue(ctx, second.ExperimentID))

	// Claim one and finish the other so only the claimed job is running
	job, err := jobs.ClaimQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	other, err := jobs.ClaimQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, other)
	require.NoError(t, jobs.MarkSucceeded(ctx, other.JobID))

	requeued, err := jobs.RequeueRunning(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), requeued)

	reclaimed, err := jobs.ClaimQueued(ctx)
	assert.NoError(t, err)
	require.NotNil(t, reclaimed)
	assert.Equal(t, job.JobID, reclaimed.JobID)
}
