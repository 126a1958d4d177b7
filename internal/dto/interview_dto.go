package dto

import (
	"time"

	"careerbridge-be/internal/entity"

	"github.com/google/uuid"
)

type ScheduleInterviewRequest struct {
	ApplicationId string     `json:"application_id" validate:"required,uuid"`
	ScheduledAt   *time.Time `json:"scheduled_at" validate:"omitempty"`
}

type StartSessionResponse struct {
	InterviewId   uuid.UUID `json:"interview_id"`
	Role          string    `json:"role"`
	Question      string    `json:"question"`
	QuestionCount int       `json:"question_count"`
}

type AdvanceSessionRequest struct {
	Response string `json:"response" validate:"required"`
}

type AdvanceSessionResponse struct {
	Type     string                 `json:"type"` // "question", "followUp" or "end"
	Text     string                 `json:"text,omitempty"`
	IsLast   bool                   `json:"is_last"`
	Score    int                    `json:"score"`
	Feedback string                 `json:"feedback"`
	Result   *SessionResultResponse `json:"result,omitempty"`
}

type SessionResultResponse struct {
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	ResponseQuality string   `json:"responseQuality"`
	TurnCount       int      `json:"turnCount"`
	DurationSeconds int      `json:"durationSeconds"`
}

type InterviewResponse struct {
	Id            uuid.UUID                   `json:"id"`
	ApplicationId uuid.UUID                   `json:"application_id"`
	CandidateId   uuid.UUID                   `json:"candidate_id"`
	Role          string                      `json:"role"`
	ScheduledAt   *time.Time                  `json:"scheduled_at,omitempty"`
	StartedAt     *time.Time                  `json:"started_at,omitempty"`
	EndedAt       *time.Time                  `json:"ended_at,omitempty"`
	Status        string                      `json:"status"`
	ChatHistory   []entity.ChatMessage        `json:"chat_history,omitempty"`
	Result        *SessionResultResponse      `json:"result,omitempty"`
	Evaluation    *entity.InterviewEvaluation `json:"evaluation,omitempty"`
	RecordingURL  string                      `json:"recording_url,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
}
