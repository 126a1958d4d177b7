package service

import (
	"context"
	"errors"
	"time"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/logger"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"
	"careerbridge-be/pkg/admin/dashboard"
	adminEvents "careerbridge-be/pkg/admin/events"
	adminUser "careerbridge-be/pkg/admin/user"

	"github.com/google/uuid"
)

type IAdminService interface {
	ListUsers(ctx context.Context, req dto.AdminListUsersRequest) ([]dto.AdminUserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateUserStatusRequest) error
	CloseJob(ctx context.Context, jobId uuid.UUID, req *dto.AdminModerateJobRequest) error
	GetDashboard(ctx context.Context) (*dto.AdminDashboardStats, error)
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	logger         logger.ILogger
	userManager    *adminUser.Manager
	aggregator     *dashboard.Aggregator
	eventPublisher adminEvents.Publisher
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
	userManager *adminUser.Manager,
	aggregator *dashboard.Aggregator,
	eventPublisher adminEvents.Publisher,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		logger:         log,
		userManager:    userManager,
		aggregator:     aggregator,
		eventPublisher: eventPublisher,
	}
}

func adminUserResponseOf(u *entity.User) dto.AdminUserResponse {
	res := dto.AdminUserResponse{
		Id:            u.Id,
		Email:         u.Email,
		FullName:      u.FullName,
		Role:          string(u.Role),
		Status:        string(u.Status),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
	if u.CompanyName != nil {
		res.CompanyName = *u.CompanyName
	}
	if u.Headline != nil {
		res.Headline = *u.Headline
	}
	return res
}

func (s *adminService) ListUsers(ctx context.Context, req dto.AdminListUsersRequest) ([]dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := s.userManager.FindAll(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	res := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, adminUserResponseOf(u))
	}
	return res, nil
}

func (s *adminService) GetUser(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.userManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	res := adminUserResponseOf(user)
	return &res, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, id uuid.UUID, req *dto.AdminUpdateUserStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.userManager.UpdateStatus(ctx, uow, id, req.Status, req.Reason)
}

func (s *adminService) CloseJob(ctx context.Context, jobId uuid.UUID, req *dto.AdminModerateJobRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: jobId})
	if err != nil {
		return err
	}
	if job == nil {
		return errors.New("job not found")
	}
	if job.Status == entity.JobStatusClosed {
		return nil
	}

	job.Status = entity.JobStatusClosed
	job.UpdatedAt = time.Now()
	if err := uow.JobRepository().Update(ctx, job); err != nil {
		return err
	}

	s.logger.Info("ADMIN", "Closed job posting", map[string]interface{}{
		"jobId":  jobId.String(),
		"reason": req.Reason,
	})
	s.eventPublisher.PublishJobModerated(ctx, jobId, job.RecruiterId, "closed", req.Reason)

	return nil
}

func (s *adminService) GetDashboard(ctx context.Context) (*dto.AdminDashboardStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetStats(ctx, uow)
}
