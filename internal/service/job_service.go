package service

import (
	"context"
	"errors"
	"time"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"
	"careerbridge-be/pkg/interview/questionbank"

	"github.com/google/uuid"
)

type JobListFilter struct {
	Query    string
	Location string
	Type     string
	Limit    int
	Offset   int
}

type IJobService interface {
	Create(ctx context.Context, recruiterId uuid.UUID, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, recruiterId, jobId uuid.UUID, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, recruiterId, jobId uuid.UUID) error
	GetById(ctx context.Context, jobId uuid.UUID) (*dto.JobResponse, error)
	List(ctx context.Context, filter JobListFilter) (*dto.JobListResponse, error)
	ListByRecruiter(ctx context.Context, recruiterId uuid.UUID) (*dto.JobListResponse, error)
}

type jobService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewJobService(uowFactory unitofwork.RepositoryFactory) IJobService {
	return &jobService{
		uowFactory: uowFactory,
	}
}

func jobResponseOf(job *entity.Job) dto.JobResponse {
	return dto.JobResponse{
		Id:            job.Id,
		RecruiterId:   job.RecruiterId,
		Title:         job.Title,
		Description:   job.Description,
		Requirements:  job.Requirements,
		Location:      job.Location,
		Type:          string(job.Type),
		SalaryMin:     job.SalaryMin,
		SalaryMax:     job.SalaryMax,
		InterviewRole: job.InterviewRole,
		Status:        string(job.Status),
		CreatedAt:     job.CreatedAt,
	}
}

func (s *jobService) Create(ctx context.Context, recruiterId uuid.UUID, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return nil, errors.New("salary_max must not be lower than salary_min")
	}

	interviewRole := req.InterviewRole
	if interviewRole == "" {
		interviewRole = questionbank.DefaultRole
	}

	job := &entity.Job{
		Id:            uuid.New(),
		RecruiterId:   recruiterId,
		Title:         req.Title,
		Description:   req.Description,
		Requirements:  req.Requirements,
		Location:      req.Location,
		Type:          entity.JobType(req.Type),
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		InterviewRole: interviewRole,
		Status:        entity.JobStatusOpen,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.JobRepository().Create(ctx, job); err != nil {
		return nil, err
	}

	res := jobResponseOf(job)
	return &res, nil
}

func (s *jobService) Update(ctx context.Context, recruiterId, jobId uuid.UUID, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: jobId})
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.New("job not found")
	}
	if job.RecruiterId != recruiterId {
		return nil, errors.New("job does not belong to this recruiter")
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Type != "" {
		job.Type = entity.JobType(req.Type)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Status != "" {
		job.Status = entity.JobStatus(req.Status)
	}
	job.UpdatedAt = time.Now()

	if err := uow.JobRepository().Update(ctx, job); err != nil {
		return nil, err
	}

	res := jobResponseOf(job)
	return &res, nil
}

func (s *jobService) Delete(ctx context.Context, recruiterId, jobId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: jobId})
	if err != nil {
		return err
	}
	if job == nil {
		return errors.New("job not found")
	}
	if job.RecruiterId != recruiterId {
		return errors.New("job does not belong to this recruiter")
	}

	return uow.JobRepository().Delete(ctx, jobId)
}

func (s *jobService) GetById(ctx context.Context, jobId uuid.UUID) (*dto.JobResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: jobId})
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.New("job not found")
	}

	res := jobResponseOf(job)
	return &res, nil
}

func (s *jobService) List(ctx context.Context, filter JobListFilter) (*dto.JobListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByStatus{Status: string(entity.JobStatusOpen)},
	}
	if filter.Query != "" {
		specs = append(specs, specification.SearchJobs{Query: filter.Query})
	}
	if filter.Location != "" {
		specs = append(specs, specification.Filter("location", filter.Location))
	}
	if filter.Type != "" {
		specs = append(specs, specification.Filter("type", filter.Type))
	}

	total, err := uow.JobRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: filter.Offset},
	)

	jobs, err := uow.JobRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.JobListResponse{Total: total, Jobs: make([]dto.JobResponse, len(jobs))}
	for i, job := range jobs {
		res.Jobs[i] = jobResponseOf(job)
	}
	return res, nil
}

func (s *jobService) ListByRecruiter(ctx context.Context, recruiterId uuid.UUID) (*dto.JobListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	jobs, err := uow.JobRepository().FindAll(ctx,
		specification.ByRecruiterID{RecruiterID: recruiterId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.JobListResponse{Total: int64(len(jobs)), Jobs: make([]dto.JobResponse, len(jobs))}
	for i, job := range jobs {
		res.Jobs[i] = jobResponseOf(job)
	}
	return res, nil
}
