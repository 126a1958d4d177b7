package dto

import "github.com/google/uuid"

// EvaluateInterviewMessage is the async work order handed to the evaluation
// consumer once an interview session ends.
type EvaluateInterviewMessage struct {
	InterviewId uuid.UUID `json:"interview_id"`
}
