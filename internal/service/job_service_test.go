package service

import (
	"context"
	"testing"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/pkg/interview/questionbank"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	factory := newFakeFactory()
	svc := NewJobService(factory)
	ctx := context.Background()
	recruiterId := uuid.New()

	res, err := svc.Create(ctx, recruiterId, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Go services",
		Location:    "Jakarta",
		Type:        "full-time",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.JobStatusOpen), res.Status)
	assert.Equal(t, questionbank.DefaultRole, res.InterviewRole)
}

func TestCreateJobSalaryValidation(t *testing.T) {
	svc := NewJobService(newFakeFactory())
	min, max := 2000, 1000

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateJobRequest{
		Title:     "Bad Salary",
		Type:      "full-time",
		SalaryMin: &min,
		SalaryMax: &max,
	})
	assert.ErrorContains(t, err, "salary")
}

func TestUpdateJobOwnership(t *testing.T) {
	factory := newFakeFactory()
	svc := NewJobService(factory)
	ctx := context.Background()
	recruiterId := uuid.New()

	created, err := svc.Create(ctx, recruiterId, &dto.CreateJobRequest{
		Title: "Original",
		Type:  "full-time",
	})
	require.NoError(t, err)

	// Another recruiter cannot touch it.
	_, err = svc.Update(ctx, uuid.New(), created.Id, &dto.UpdateJobRequest{Title: "Hijacked"})
	assert.Error(t, err)

	updated, err := svc.Update(ctx, recruiterId, created.Id, &dto.UpdateJobRequest{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestDeleteJobOwnership(t *testing.T) {
	factory := newFakeFactory()
	svc := NewJobService(factory)
	ctx := context.Background()
	recruiterId := uuid.New()

	created, err := svc.Create(ctx, recruiterId, &dto.CreateJobRequest{Title: "Doomed", Type: "contract"})
	require.NoError(t, err)

	assert.Error(t, svc.Delete(ctx, uuid.New(), created.Id))
	require.NoError(t, svc.Delete(ctx, recruiterId, created.Id))

	_, err = svc.GetById(ctx, created.Id)
	assert.Error(t, err)
}

func TestListJobsOnlyOpen(t *testing.T) {
	factory := newFakeFactory()
	svc := NewJobService(factory)
	ctx := context.Background()
	recruiterId := uuid.New()

	open, err := svc.Create(ctx, recruiterId, &dto.CreateJobRequest{Title: "Open Role", Type: "full-time"})
	require.NoError(t, err)
	closed, err := svc.Create(ctx, recruiterId, &dto.CreateJobRequest{Title: "Closed Role", Type: "full-time"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, recruiterId, closed.Id, &dto.UpdateJobRequest{Status: string(entity.JobStatusClosed)})
	require.NoError(t, err)

	list, err := svc.List(ctx, JobListFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 1, list.Total)
	assert.Equal(t, open.Id, list.Jobs[0].Id)

	// The recruiter's own listing still shows both.
	mine, err := svc.ListByRecruiter(ctx, recruiterId)
	require.NoError(t, err)
	assert.EqualValues(t, 2, mine.Total)
}

func TestListJobsFilters(t *testing.T) {
	factory := newFakeFactory()
	svc := NewJobService(factory)
	ctx := context.Background()
	recruiterId := uuid.New()

	_, err := svc.Create(ctx, recruiterId, &dto.CreateJobRequest{Title: "Go Backend", Location: "Jakarta", Type: "full-time"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, recruiterId, &dto.CreateJobRequest{Title: "Data Analyst", Location: "Bandung", Type: "contract"})
	require.NoError(t, err)

	byQuery, err := svc.List(ctx, JobListFilter{Query: "backend"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, byQuery.Total)

	byLocation, err := svc.List(ctx, JobListFilter{Location: "Bandung"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, byLocation.Total)

	byType, err := svc.List(ctx, JobListFilter{Type: "contract"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, byType.Total)
}
