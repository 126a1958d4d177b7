package entity

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string
type JobType string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"

	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeIntern   JobType = "internship"
)

type Job struct {
	Id            uuid.UUID
	RecruiterId   uuid.UUID
	Title         string
	Description   string
	Requirements  []string
	Location      string
	Type          JobType
	SalaryMin     *int
	SalaryMax     *int
	InterviewRole string // role key used to build the interview question set
	Status        JobStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
