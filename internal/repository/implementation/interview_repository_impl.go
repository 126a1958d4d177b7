package implementation

import (
	"context"
	"encoding/json"
	"errors"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/mapper"
	"careerbridge-be/internal/model"
	"careerbridge-be/internal/repository/contract"
	"careerbridge-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InterviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterviewMapper
}

func NewInterviewRepository(db *gorm.DB) contract.InterviewRepository {
	return &InterviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterviewMapper(),
	}
}

func (r *InterviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterviewRepositoryImpl) Create(ctx context.Context, interview *entity.Interview) error {
	m := r.mapper.ToModel(interview)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interview = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterviewRepositoryImpl) Update(ctx context.Context, interview *entity.Interview) error {
	m := r.mapper.ToModel(interview)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*interview = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Interview{}, id).Error
}

func (r *InterviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error) {
	var m model.Interview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InterviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error) {
	var models []*model.Interview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InterviewRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Interview{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InterviewRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *InterviewRepositoryImpl) SaveChatHistory(ctx context.Context, id uuid.UUID, history []entity.ChatMessage) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("chat_history", datatypes.JSON(data)).Error
}

func (r *InterviewRepositoryImpl) SaveResult(ctx context.Context, id uuid.UUID, result *entity.InterviewResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("result", datatypes.JSON(data)).Error
}

func (r *InterviewRepositoryImpl) SaveEvaluation(ctx context.Context, id uuid.UUID, evaluation *entity.InterviewEvaluation) error {
	data, err := json.Marshal(evaluation)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("evaluation", datatypes.JSON(data)).Error
}

func (r *InterviewRepositoryImpl) SaveRecordingURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.db.WithContext(ctx).
		Model(&model.Interview{}).
		Where("id = ?", id).
		Update("recording_url", url).Error
}
