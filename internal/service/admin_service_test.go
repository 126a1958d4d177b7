package service

import (
	"context"
	"testing"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/pkg/admin/dashboard"
	adminUser "careerbridge-be/pkg/admin/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type recordingAdminPublisher struct {
	statusChanges []string
	jobActions    []string
}

func (r *recordingAdminPublisher) PublishUserStatusChanged(ctx context.Context, userId uuid.UUID, email, oldStatus, newStatus, reason string) {
	r.statusChanges = append(r.statusChanges, newStatus)
}

func (r *recordingAdminPublisher) PublishJobModerated(ctx context.Context, jobId, recruiterId uuid.UUID, action, reason string) {
	r.jobActions = append(r.jobActions, action)
}

func newAdminFixture() (*fakeFactory, *recordingAdminPublisher, IAdminService) {
	factory := newFakeFactory()
	publisher := &recordingAdminPublisher{}
	log := noopLogger{}

	svc := NewAdminService(
		factory,
		log,
		adminUser.NewManager(log, publisher),
		dashboard.NewAggregator(log),
		publisher,
	)
	return factory, publisher, svc
}

func TestAdminUpdateUserStatus(t *testing.T) {
	factory, publisher, svc := newAdminFixture()
	ctx := context.Background()

	userId := uuid.New()
	require.NoError(t, factory.uow.users.Create(ctx, &entity.User{
		Id:     userId,
		Email:  "member@example.com",
		Role:   entity.UserRoleJobseeker,
		Status: entity.UserStatusActive,
	}))

	require.NoError(t, svc.UpdateUserStatus(ctx, userId, &dto.AdminUpdateUserStatusRequest{
		Status: string(entity.UserStatusBlocked),
		Reason: "spam postings",
	}))

	blocked, err := svc.GetUser(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, string(entity.UserStatusBlocked), blocked.Status)
	assert.Equal(t, []string{string(entity.UserStatusBlocked)}, publisher.statusChanges)

	// Re-applying the same status is a no-op and publishes nothing.
	require.NoError(t, svc.UpdateUserStatus(ctx, userId, &dto.AdminUpdateUserStatusRequest{
		Status: string(entity.UserStatusBlocked),
	}))
	assert.Len(t, publisher.statusChanges, 1)
}

func TestAdminCannotBlockAdmin(t *testing.T) {
	factory, _, svc := newAdminFixture()
	ctx := context.Background()

	adminId := uuid.New()
	require.NoError(t, factory.uow.users.Create(ctx, &entity.User{
		Id:     adminId,
		Email:  "root@example.com",
		Role:   entity.UserRoleAdmin,
		Status: entity.UserStatusActive,
	}))

	err := svc.UpdateUserStatus(ctx, adminId, &dto.AdminUpdateUserStatusRequest{
		Status: string(entity.UserStatusBlocked),
	})
	assert.Error(t, err)
}

func TestAdminCloseJob(t *testing.T) {
	factory, publisher, svc := newAdminFixture()
	ctx := context.Background()

	jobId := uuid.New()
	require.NoError(t, factory.uow.jobs.Create(ctx, &entity.Job{
		Id:          jobId,
		RecruiterId: uuid.New(),
		Title:       "Suspicious Posting",
		Status:      entity.JobStatusOpen,
	}))

	require.NoError(t, svc.CloseJob(ctx, jobId, &dto.AdminModerateJobRequest{Reason: "scam report"}))

	job, err := factory.uow.jobs.FindOne(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusClosed, job.Status)
	assert.Equal(t, []string{"closed"}, publisher.jobActions)

	// Closing an already closed job is idempotent.
	require.NoError(t, svc.CloseJob(ctx, jobId, &dto.AdminModerateJobRequest{}))
	assert.Len(t, publisher.jobActions, 1)
}

func TestAdminListUsers(t *testing.T) {
	factory, _, svc := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, factory.uow.users.Create(ctx, &entity.User{
		Id: uuid.New(), Email: "a@example.com", FullName: "Alice", Role: entity.UserRoleJobseeker,
	}))
	require.NoError(t, factory.uow.users.Create(ctx, &entity.User{
		Id: uuid.New(), Email: "b@example.com", FullName: "Bob", Role: entity.UserRoleRecruiter,
	}))

	all, err := svc.ListUsers(ctx, dto.AdminListUsersRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	recruiters, err := svc.ListUsers(ctx, dto.AdminListUsersRequest{Role: string(entity.UserRoleRecruiter)})
	require.NoError(t, err)
	require.Len(t, recruiters, 1)
	assert.Equal(t, "b@example.com", recruiters[0].Email)

	named, err := svc.ListUsers(ctx, dto.AdminListUsersRequest{Search: "alice"})
	require.NoError(t, err)
	require.Len(t, named, 1)
	assert.Equal(t, "a@example.com", named[0].Email)
}

func TestAdminDashboard(t *testing.T) {
	factory, _, svc := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, factory.uow.users.Create(ctx, &entity.User{
		Id: uuid.New(), Email: "a@example.com", Status: entity.UserStatusActive,
	}))
	require.NoError(t, factory.uow.users.Create(ctx, &entity.User{
		Id: uuid.New(), Email: "b@example.com", Status: entity.UserStatusPending,
	}))
	require.NoError(t, factory.uow.jobs.Create(ctx, &entity.Job{
		Id: uuid.New(), Status: entity.JobStatusOpen,
	}))
	require.NoError(t, factory.uow.interviews.Create(ctx, &entity.Interview{
		Id: uuid.New(), Status: entity.InterviewStatusEvaluated,
	}))

	stats, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 1, stats.OpenJobs)
	assert.Equal(t, 1, stats.EvaluatedInterviews)
	assert.Len(t, stats.RecentInterviews, 1)
}
