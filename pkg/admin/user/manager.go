package user

import (
	"context"
	"fmt"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/logger"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"
	adminEvents "careerbridge-be/pkg/admin/events"

	"github.com/google/uuid"
)

// Manager handles account moderation for admins
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

// NewManager creates a new user manager
func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

// FindAll retrieves users with pagination, optional search and role filter
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.AdminListUsersRequest) ([]*entity.User, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	specs := []specification.Specification{
		specification.SearchUsers{Query: req.Search},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if req.Role != "" {
		specs = append(specs, specification.ByRole{Role: req.Role})
	}

	return uow.UserRepository().FindAll(ctx, specs...)
}

// FindOne retrieves a single user by ID
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	return uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
}

// UpdateStatus blocks or reinstates an account and emits the audit event
func (m *Manager) UpdateStatus(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, status, reason string) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return fmt.Errorf("cannot change status of an admin account")
	}
	if string(user.Status) == status {
		return nil
	}

	if err := uow.UserRepository().UpdateStatus(ctx, userId, status); err != nil {
		return err
	}

	m.logger.Info("ADMIN", "Updated user status", map[string]interface{}{
		"userId": userId.String(),
		"status": status,
		"reason": reason,
	})
	m.publisher.PublishUserStatusChanged(ctx, userId, user.Email, string(user.Status), status, reason)

	return nil
}

// Delete removes a user
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) error {
	m.logger.Info("ADMIN", "Deleted User", map[string]interface{}{
		"userId": userId.String(),
	})

	return uow.UserRepository().Delete(ctx, userId)
}
