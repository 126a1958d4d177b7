package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/pkg/scoring"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvaluationConsumer(factory *fakeFactory) *consumerService {
	return &consumerService{
		topicName:     "EVALUATE_INTERVIEW",
		uowFactory:    factory,
		scoringClient: scoring.NewClient((*scoring.GeminiGenerator)(nil)),
	}
}

func evaluateMessageFor(t *testing.T, interviewId uuid.UUID) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.EvaluateInterviewMessage{InterviewId: interviewId})
	require.NoError(t, err)
	return message.NewMessage(uuid.NewString(), payload)
}

func TestProcessMessagePersistsEvaluationAndFlipsStatuses(t *testing.T) {
	factory := newFakeFactory()
	ctx := context.Background()

	applicationId := uuid.New()
	interviewId := uuid.New()
	require.NoError(t, factory.uow.applications.Create(ctx, &entity.Application{
		Id:          applicationId,
		JobId:       uuid.New(),
		CandidateId: uuid.New(),
		Status:      entity.ApplicationStatusReviewing,
	}))
	require.NoError(t, factory.uow.interviews.Create(ctx, &entity.Interview{
		Id:            interviewId,
		ApplicationId: applicationId,
		CandidateId:   uuid.New(),
		Role:          "software-developer",
		Status:        entity.InterviewStatusCompleted,
		ChatHistory: []entity.ChatMessage{
			{Role: "assistant", Content: "Tell me about yourself.", Timestamp: time.Now()},
			{Role: "user", Content: "I have five years of backend experience.", Timestamp: time.Now()},
		},
	}))

	cs := newEvaluationConsumer(factory)
	msg := evaluateMessageFor(t, interviewId)
	cs.processMessage(ctx, msg)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("message was not acked")
	}

	interview := factory.uow.interviews.get(interviewId)
	require.NotNil(t, interview)
	assert.Equal(t, entity.InterviewStatusEvaluated, interview.Status)
	require.NotNil(t, interview.Evaluation)
	// No recording means the scorer falls back without calling the API.
	assert.True(t, interview.Evaluation.Fallback)
	assert.Equal(t, 0, interview.Evaluation.OverallScore)
	assert.Len(t, interview.Evaluation.ImprovementTips, 2)

	application, err := factory.uow.applications.FindOne(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusInterviewed, application.Status)
}

func TestProcessMessageUnknownInterviewAcks(t *testing.T) {
	factory := newFakeFactory()

	cs := newEvaluationConsumer(factory)
	msg := evaluateMessageFor(t, uuid.New())
	cs.processMessage(context.Background(), msg)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("unknown interview must be acked, not retried")
	}
}

func TestProcessMessageBadPayloadAcks(t *testing.T) {
	cs := newEvaluationConsumer(newFakeFactory())
	msg := message.NewMessage(uuid.NewString(), []byte("not json"))
	cs.processMessage(context.Background(), msg)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("invalid payload must be acked, not retried")
	}
}
