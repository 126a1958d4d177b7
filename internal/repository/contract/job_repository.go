package contract

import (
	"context"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Job, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Job, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
