package contract

import (
	"context"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *entity.Interview) error
	Update(ctx context.Context, interview *entity.Interview) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SaveChatHistory(ctx context.Context, id uuid.UUID, history []entity.ChatMessage) error
	SaveResult(ctx context.Context, id uuid.UUID, result *entity.InterviewResult) error
	SaveEvaluation(ctx context.Context, id uuid.UUID, evaluation *entity.InterviewEvaluation) error
	SaveRecordingURL(ctx context.Context, id uuid.UUID, url string) error
}
