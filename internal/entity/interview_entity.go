package entity

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewStatusScheduled  InterviewStatus = "scheduled"
	InterviewStatusInProgress InterviewStatus = "in_progress"
	InterviewStatusCompleted  InterviewStatus = "completed"
	InterviewStatusEvaluated  InterviewStatus = "evaluated"
)

// ChatMessage is a single entry of the interview transcript.
type ChatMessage struct {
	Role      string    `json:"role"` // "assistant" or "user"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// InterviewResult carries the scripted scoring produced when the session ends.
type InterviewResult struct {
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	ResponseQuality string   `json:"responseQuality"`
	TurnCount       int      `json:"turnCount"`
	DurationSeconds int      `json:"durationSeconds"`
}

// SubScore is one axis of the external evaluation.
type SubScore struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// InterviewEvaluation is the structured report returned by the external
// evaluator, or its fallback when evaluation fails.
type InterviewEvaluation struct {
	Communication      SubScore `json:"communication"`
	TechnicalKnowledge SubScore `json:"technical_knowledge"`
	Confidence         SubScore `json:"confidence"`
	BodyLanguage       SubScore `json:"body_language"`
	OverallScore       int      `json:"overall_score"`
	Summary            string   `json:"summary"`
	ImprovementTips    []string `json:"improvement_tips"`
	Fallback           bool     `json:"fallback,omitempty"`
}

type Interview struct {
	Id            uuid.UUID
	ApplicationId uuid.UUID
	CandidateId   uuid.UUID
	Role          string
	ScheduledAt   *time.Time
	StartedAt     *time.Time
	EndedAt       *time.Time
	Status        InterviewStatus
	ChatHistory   []ChatMessage
	Result        *InterviewResult
	Evaluation    *InterviewEvaluation
	RecordingURL  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
