package events

import (
	"context"
	"time"

	"careerbridge-be/internal/pkg/logger"
	pkgEvents "careerbridge-be/pkg/events"
	pktNats "careerbridge-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for admin operations
type Publisher interface {
	PublishUserStatusChanged(ctx context.Context, userId uuid.UUID, email, oldStatus, newStatus, reason string)
	PublishJobModerated(ctx context.Context, jobId, recruiterId uuid.UUID, action, reason string)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsPublisher creates a new NATS-based event publisher
func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

// PublishUserStatusChanged emits USER_STATUS_CHANGED when an admin blocks
// or reinstates an account.
func (p *NatsPublisher) PublishUserStatusChanged(ctx context.Context, userId uuid.UUID, email, oldStatus, newStatus, reason string) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "USER_STATUS_CHANGED",
		Data: map[string]interface{}{
			"user_id":         userId.String(),
			"email":           email,
			"previous_status": oldStatus,
			"new_status":      newStatus,
			"reason":          reason,
			"entity_type":     "user",
			"entity_id":       userId.String(),
			"occurred_at":     now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish USER_STATUS_CHANGED event", map[string]interface{}{"error": err.Error()})
	}
}

// PublishJobModerated emits JOB_MODERATED when an admin closes or removes
// a job posting.
func (p *NatsPublisher) PublishJobModerated(ctx context.Context, jobId, recruiterId uuid.UUID, action, reason string) {
	if p.publisher == nil {
		return
	}

	now := time.Now()
	evt := pkgEvents.BaseEvent{
		Type: "JOB_MODERATED",
		Data: map[string]interface{}{
			"job_id":       jobId.String(),
			"recruiter_id": recruiterId.String(),
			"action":       action,
			"reason":       reason,
			"entity_type":  "job",
			"entity_id":    jobId.String(),
			"occurred_at":  now,
		},
		OccurredAt: now,
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish JOB_MODERATED event", map[string]interface{}{"error": err.Error()})
	}
}
