package dashboard

import (
	"context"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/logger"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"
)

// Aggregator handles dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats retrieves marketplace-wide dashboard statistics
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AdminDashboardStats, error) {
	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	activeUsers, err := uow.UserRepository().Count(ctx, specification.ByStatus{Status: string(entity.UserStatusActive)})
	if err != nil {
		return nil, err
	}

	totalJobs, err := uow.JobRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	openJobs, err := uow.JobRepository().Count(ctx, specification.ByStatus{Status: string(entity.JobStatusOpen)})
	if err != nil {
		return nil, err
	}

	totalApplications, err := uow.ApplicationRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	evaluated, err := uow.InterviewRepository().Count(ctx, specification.ByStatus{Status: string(entity.InterviewStatusEvaluated)})
	if err != nil {
		return nil, err
	}

	// Latest five interviews, whatever their state.
	recent, err := uow.InterviewRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 5, Offset: 0},
	)
	var recentDtos []dto.InterviewResponse
	if err == nil {
		for _, i := range recent {
			recentDtos = append(recentDtos, dto.InterviewResponse{
				Id:            i.Id,
				ApplicationId: i.ApplicationId,
				CandidateId:   i.CandidateId,
				Role:          i.Role,
				ScheduledAt:   i.ScheduledAt,
				StartedAt:     i.StartedAt,
				EndedAt:       i.EndedAt,
				Status:        string(i.Status),
				CreatedAt:     i.CreatedAt,
			})
		}
	}

	return &dto.AdminDashboardStats{
		TotalUsers:          int(totalUsers),
		ActiveUsers:         int(activeUsers),
		TotalJobs:           int(totalJobs),
		OpenJobs:            int(openJobs),
		TotalApplications:   int(totalApplications),
		EvaluatedInterviews: int(evaluated),
		RecentInterviews:    recentDtos,
	}, nil
}
