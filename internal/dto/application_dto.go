package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitApplicationRequest struct {
	JobId       string `json:"job_id" validate:"required,uuid"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reviewing interviewed accepted rejected"`
}

type ApplicationResponse struct {
	Id          uuid.UUID `json:"id"`
	JobId       uuid.UUID `json:"job_id"`
	CandidateId uuid.UUID `json:"candidate_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ApplicationDetailResponse struct {
	Id            uuid.UUID `json:"id"`
	JobId         uuid.UUID `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	CandidateId   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
