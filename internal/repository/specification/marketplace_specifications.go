package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByRecruiterID struct {
	RecruiterID uuid.UUID
}

func (s ByRecruiterID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("recruiter_id = ?", s.RecruiterID)
}

type ByJobID struct {
	JobID uuid.UUID
}

func (s ByJobID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("job_id = ?", s.JobID)
}

type ByCandidateID struct {
	CandidateID uuid.UUID
}

func (s ByCandidateID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("candidate_id = ?", s.CandidateID)
}

type ByApplicationID struct {
	ApplicationID uuid.UUID
}

func (s ByApplicationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("application_id = ?", s.ApplicationID)
}

// SearchJobs matches title or location against a free-text query.
type SearchJobs struct {
	Query string
}

func (s SearchJobs) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR location ILIKE ?", pattern, pattern)
}
