package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminListUsersRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Role   string `query:"role" validate:"omitempty,oneof=jobseeker recruiter admin"`
}

type AdminUserResponse struct {
	Id            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	EmailVerified bool      `json:"email_verified"`
	CompanyName   string    `json:"company_name,omitempty"`
	Headline      string    `json:"headline,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type AdminUpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active blocked"`
	Reason string `json:"reason" validate:"max=500"`
}

type AdminModerateJobRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type AdminDashboardStats struct {
	TotalUsers          int `json:"total_users"`
	ActiveUsers         int `json:"active_users"`
	TotalJobs           int `json:"total_jobs"`
	OpenJobs            int `json:"open_jobs"`
	TotalApplications   int `json:"total_applications"`
	EvaluatedInterviews int `json:"evaluated_interviews"`

	RecentInterviews []InterviewResponse `json:"recent_interviews"`
}
