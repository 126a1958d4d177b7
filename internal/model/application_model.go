package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Application struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobId       uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_job_candidate"`
	CandidateId uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_job_candidate"`
	CoverLetter string         `gorm:"type:text"`
	ResumeURL   *string        `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(50);not null;default:'submitted';index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Application) TableName() string {
	return "applications"
}
