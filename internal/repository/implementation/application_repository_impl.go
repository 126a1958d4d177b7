package implementation

import (
	"context"
	"errors"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/mapper"
	"careerbridge-be/internal/model"
	"careerbridge-be/internal/repository/contract"
	"careerbridge-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

type ApplicationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApplicationMapper
}

func NewApplicationRepository(db *gorm.DB) contract.ApplicationRepository {
	return &ApplicationRepositoryImpl{
		db:     db,
		mapper: mapper.NewApplicationMapper(),
	}
}

func (r *ApplicationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *entity.Application) error {
	m := r.mapper.ToModel(application)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// The unique index on (job_id, candidate_id) backs the
		// one-application-per-job rule under concurrent submits.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return contract.ErrDuplicateApplication
		}
		return err
	}
	*application = *r.mapper.ToEntity(m)
	return nil
}

func (r *ApplicationRepositoryImpl) Update(ctx context.Context, application *entity.Application) error {
	m := r.mapper.ToModel(application)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*application = *r.mapper.ToEntity(m)
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Application{}, id).Error
}

func (r *ApplicationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	var m model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ApplicationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	var models []*model.Application
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ApplicationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Application{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ApplicationRepositoryImpl) ListForRecruiter(ctx context.Context, recruiterId uuid.UUID, limit, offset int) ([]*entity.ApplicationDetail, error) {
	var details []*entity.ApplicationDetail
	err := r.db.WithContext(ctx).
		Table("applications a").
		Select("a.id, a.job_id, j.title as job_title, a.candidate_id, u.full_name as candidate_name, a.status, a.created_at").
		Joins("JOIN jobs j ON j.id = a.job_id").
		Joins("JOIN users u ON u.id = a.candidate_id").
		Where("j.recruiter_id = ? AND a.deleted_at IS NULL", recruiterId).
		Order("a.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
