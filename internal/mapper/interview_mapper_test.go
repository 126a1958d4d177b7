package mapper

import (
	"testing"
	"time"

	"careerbridge-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterviewMapperRoundTrip(t *testing.T) {
	m := NewInterviewMapper()

	scheduled := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	started := scheduled.Add(5 * time.Minute)
	ended := started.Add(22 * time.Minute)
	recording := "/recordings/abc.webm"

	src := &entity.Interview{
		Id:            uuid.New(),
		ApplicationId: uuid.New(),
		CandidateId:   uuid.New(),
		Role:          "data-scientist",
		ScheduledAt:   &scheduled,
		StartedAt:     &started,
		EndedAt:       &ended,
		Status:        entity.InterviewStatusEvaluated,
		ChatHistory: []entity.ChatMessage{
			{Role: "assistant", Content: "Walk me through a recent project.", Timestamp: started},
			{Role: "user", Content: "I built a churn model for a telco.", Timestamp: started.Add(time.Minute)},
		},
		Result: &entity.InterviewResult{
			Score:           72,
			Feedback:        "Strong performance with thoughtful answers.",
			Strengths:       []string{"Clear communication", "Concrete examples"},
			Improvements:    []string{"Quantify impact"},
			ResponseQuality: "Good",
			TurnCount:       6,
			DurationSeconds: 1320,
		},
		Evaluation: &entity.InterviewEvaluation{
			Communication:      entity.SubScore{Score: 4, Feedback: "Articulate"},
			TechnicalKnowledge: entity.SubScore{Score: 4, Feedback: "Solid fundamentals"},
			Confidence:         entity.SubScore{Score: 3, Feedback: "Steady"},
			BodyLanguage:       entity.SubScore{Score: 3, Feedback: "Composed"},
			OverallScore:       4,
			Summary:            "A convincing candidate for the role.",
			ImprovementTips:    []string{"Lead with the outcome", "Tighten long answers"},
		},
		RecordingURL: &recording,
		CreatedAt:    scheduled.Add(-48 * time.Hour),
		UpdatedAt:    ended,
	}

	stored := m.ToModel(src)
	require.NotEmpty(t, stored.ChatHistory)
	require.NotEmpty(t, stored.Result)
	require.NotEmpty(t, stored.Evaluation)

	got := m.ToEntity(stored)
	assert.Equal(t, src, got)
}

func TestInterviewMapperEmptyColumns(t *testing.T) {
	m := NewInterviewMapper()

	src := &entity.Interview{
		Id:            uuid.New(),
		ApplicationId: uuid.New(),
		CandidateId:   uuid.New(),
		Role:          "marketing",
		Status:        entity.InterviewStatusScheduled,
	}

	stored := m.ToModel(src)
	assert.Empty(t, stored.ChatHistory)
	assert.Empty(t, stored.Result)
	assert.Empty(t, stored.Evaluation)

	got := m.ToEntity(stored)
	assert.Nil(t, got.ChatHistory)
	assert.Nil(t, got.Result)
	assert.Nil(t, got.Evaluation)
	assert.Nil(t, got.RecordingURL)
	assert.Equal(t, src, got)
}

func TestInterviewMapperNil(t *testing.T) {
	m := NewInterviewMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
