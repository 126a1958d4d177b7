package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecruiterId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Description   string         `gorm:"type:text"`
	Requirements  datatypes.JSON `gorm:"type:jsonb"`
	Location      string         `gorm:"type:varchar(255)"`
	Type          string         `gorm:"type:varchar(50);not null;default:'full-time'"`
	SalaryMin     *int
	SalaryMax     *int
	InterviewRole string         `gorm:"type:varchar(100);not null;default:'software-developer'"`
	Status        string         `gorm:"type:varchar(50);not null;default:'open';index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Job) TableName() string {
	return "jobs"
}
