package entity

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusReviewing   ApplicationStatus = "reviewing"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

type Application struct {
	Id          uuid.UUID
	JobId       uuid.UUID
	CandidateId uuid.UUID
	CoverLetter string
	ResumeURL   *string
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ApplicationDetail is a projection for recruiter listings (joined data).
type ApplicationDetail struct {
	Id            uuid.UUID
	JobId         uuid.UUID
	JobTitle      string
	CandidateId   uuid.UUID
	CandidateName string
	Status        ApplicationStatus
	CreatedAt     time.Time
}
