package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/repository/contract"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"
	"careerbridge-be/pkg/events"
	pktNats "careerbridge-be/pkg/nats"

	"github.com/google/uuid"
)

type IApplicationService interface {
	Submit(ctx context.Context, candidateId uuid.UUID, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	ListByCandidate(ctx context.Context, candidateId uuid.UUID) ([]dto.ApplicationResponse, error)
	ListForRecruiter(ctx context.Context, recruiterId uuid.UUID, limit, offset int) ([]dto.ApplicationDetailResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, recruiterId, id uuid.UUID, req *dto.UpdateApplicationStatusRequest) error
}

type applicationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewApplicationService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IApplicationService {
	return &applicationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func applicationResponseOf(a *entity.Application) dto.ApplicationResponse {
	res := dto.ApplicationResponse{
		Id:          a.Id,
		JobId:       a.JobId,
		CandidateId: a.CandidateId,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
	if a.ResumeURL != nil {
		res.ResumeURL = *a.ResumeURL
	}
	return res
}

func (s *applicationService) Submit(ctx context.Context, candidateId uuid.UUID, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	jobId, err := uuid.Parse(req.JobId)
	if err != nil {
		return nil, errors.New("invalid job id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: jobId})
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.New("job not found")
	}
	if job.Status != entity.JobStatusOpen {
		return nil, errors.New("job is not accepting applications")
	}

	existing, err := uow.ApplicationRepository().FindOne(ctx,
		specification.ByJobID{JobID: jobId},
		specification.ByCandidateID{CandidateID: candidateId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("already applied to this job")
	}

	application := &entity.Application{
		Id:          uuid.New(),
		JobId:       jobId,
		CandidateId: candidateId,
		CoverLetter: req.CoverLetter,
		Status:      entity.ApplicationStatusSubmitted,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if req.ResumeURL != "" {
		application.ResumeURL = &req.ResumeURL
	}

	if err := uow.ApplicationRepository().Create(ctx, application); err != nil {
		if errors.Is(err, contract.ErrDuplicateApplication) {
			return nil, errors.New("already applied to this job")
		}
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewApplicationSubmittedEvent(application.Id.String(), jobId.String(), candidateId.String())
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish APPLICATION_SUBMITTED event: %v\n", err)
		}
	}

	res := applicationResponseOf(application)
	return &res, nil
}

func (s *applicationService) ListByCandidate(ctx context.Context, candidateId uuid.UUID) ([]dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	apps, err := uow.ApplicationRepository().FindAll(ctx,
		specification.ByCandidateID{CandidateID: candidateId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ApplicationResponse, len(apps))
	for i, a := range apps {
		res[i] = applicationResponseOf(a)
	}
	return res, nil
}

func (s *applicationService) ListForRecruiter(ctx context.Context, recruiterId uuid.UUID, limit, offset int) ([]dto.ApplicationDetailResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	details, err := uow.ApplicationRepository().ListForRecruiter(ctx, recruiterId, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ApplicationDetailResponse, len(details))
	for i, d := range details {
		res[i] = dto.ApplicationDetailResponse{
			Id:            d.Id,
			JobId:         d.JobId,
			JobTitle:      d.JobTitle,
			CandidateId:   d.CandidateId,
			CandidateName: d.CandidateName,
			Status:        string(d.Status),
			CreatedAt:     d.CreatedAt,
		}
	}
	return res, nil
}

func (s *applicationService) GetById(ctx context.Context, id uuid.UUID) (*dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	application, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.New("application not found")
	}

	res := applicationResponseOf(application)
	return &res, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, recruiterId, id uuid.UUID, req *dto.UpdateApplicationStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	application, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if application == nil {
		return errors.New("application not found")
	}

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: application.JobId})
	if err != nil {
		return err
	}
	if job == nil || job.RecruiterId != recruiterId {
		return errors.New("application does not belong to this recruiter")
	}

	return uow.ApplicationRepository().UpdateStatus(ctx, id, req.Status)
}
