package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Interview struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId uuid.UUID `gorm:"type:uuid;not null;index"`
	CandidateId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Role          string    `gorm:"type:varchar(100);not null"`
	ScheduledAt   *time.Time
	StartedAt     *time.Time
	EndedAt       *time.Time
	Status        string         `gorm:"type:varchar(50);not null;default:'scheduled';index"`
	ChatHistory   datatypes.JSON `gorm:"type:jsonb"`
	Result        datatypes.JSON `gorm:"type:jsonb"`
	Evaluation    datatypes.JSON `gorm:"type:jsonb"`
	RecordingURL  *string        `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Interview) TableName() string {
	return "interviews"
}
