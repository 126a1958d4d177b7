package events

import "time"

// Event type codes published on the bus.
const (
	TypeUserRegistered       = "USER_REGISTERED"
	TypeApplicationSubmitted = "APPLICATION_SUBMITTED"
	TypeInterviewScheduled   = "INTERVIEW_SCHEDULED"
	TypeInterviewCompleted   = "INTERVIEW_COMPLETED"
)

func NewUserRegisteredEvent(userID, email, role string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"user_id": userID,
			"email":   email,
			"role":    role,
		},
		OccurredAt: time.Now(),
	}
}

func NewApplicationSubmittedEvent(applicationID, jobID, candidateID string) Event {
	return BaseEvent{
		Type: TypeApplicationSubmitted,
		Data: map[string]interface{}{
			"application_id": applicationID,
			"job_id":         jobID,
			"candidate_id":   candidateID,
		},
		OccurredAt: time.Now(),
	}
}

func NewInterviewScheduledEvent(interviewID, applicationID, candidateID string, scheduledAt time.Time) Event {
	return BaseEvent{
		Type: TypeInterviewScheduled,
		Data: map[string]interface{}{
			"interview_id":   interviewID,
			"application_id": applicationID,
			"candidate_id":   candidateID,
			"scheduled_at":   scheduledAt,
		},
		OccurredAt: time.Now(),
	}
}

func NewInterviewCompletedEvent(interviewID, candidateID string, overallScore int) Event {
	return BaseEvent{
		Type: TypeInterviewCompleted,
		Data: map[string]interface{}{
			"interview_id":  interviewID,
			"candidate_id":  candidateID,
			"overall_score": overallScore,
		},
		OccurredAt: time.Now(),
	}
}
