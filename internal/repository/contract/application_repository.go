package contract

import (
	"context"
	"errors"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ErrDuplicateApplication is returned when a candidate applies to the same
// job twice.
var ErrDuplicateApplication = errors.New("candidate already applied to this job")

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.Application) error
	Update(ctx context.Context, application *entity.Application) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// ListForRecruiter joins job and candidate data for recruiter dashboards.
	ListForRecruiter(ctx context.Context, recruiterId uuid.UUID, limit, offset int) ([]*entity.ApplicationDetail, error)
}
