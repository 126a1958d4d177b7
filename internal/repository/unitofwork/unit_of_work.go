package unitofwork

import (
	"context"

	"careerbridge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	JobRepository() contract.JobRepository
	ApplicationRepository() contract.ApplicationRepository
	InterviewRepository() contract.InterviewRepository
}
