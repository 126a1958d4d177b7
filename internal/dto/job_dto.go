package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title         string   `json:"title" validate:"required,min=3"`
	Description   string   `json:"description" validate:"required,min=10"`
	Requirements  []string `json:"requirements" validate:"required,min=1,dive,min=2"`
	Location      string   `json:"location" validate:"required"`
	Type          string   `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	SalaryMin     *int     `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax     *int     `json:"salary_max" validate:"omitempty,min=0"`
	InterviewRole string   `json:"interview_role" validate:"omitempty"`
}

type UpdateJobRequest struct {
	Title        string   `json:"title" validate:"omitempty,min=3"`
	Description  string   `json:"description" validate:"omitempty,min=10"`
	Requirements []string `json:"requirements" validate:"omitempty,min=1,dive,min=2"`
	Location     string   `json:"location" validate:"omitempty"`
	Type         string   `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	SalaryMin    *int     `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax    *int     `json:"salary_max" validate:"omitempty,min=0"`
	Status       string   `json:"status" validate:"omitempty,oneof=open closed draft"`
}

type JobResponse struct {
	Id            uuid.UUID `json:"id"`
	RecruiterId   uuid.UUID `json:"recruiter_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Requirements  []string  `json:"requirements"`
	Location      string    `json:"location"`
	Type          string    `json:"type"`
	SalaryMin     *int      `json:"salary_min,omitempty"`
	SalaryMax     *int      `json:"salary_max,omitempty"`
	InterviewRole string    `json:"interview_role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type JobListResponse struct {
	Jobs  []JobResponse `json:"jobs"`
	Total int64         `json:"total"`
}
