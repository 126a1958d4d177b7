package nats

import (
	"encoding/json"
	"testing"
	"time"

	"careerbridge-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectFor(t *testing.T) {
	assert.Equal(t, "careerbridge.interview_completed", SubjectFor(events.TypeInterviewCompleted))
	assert.Equal(t, "careerbridge.application_submitted", SubjectFor(events.TypeApplicationSubmitted))
	assert.Equal(t, "careerbridge.user_registered", SubjectFor(events.TypeUserRegistered))
}

// What the publisher stamps into subject, headers, and payload must come
// back out of eventFrom as the same event.
func TestEventHeaderRoundTrip(t *testing.T) {
	src := events.NewInterviewCompletedEvent("interview-1", "candidate-1", 4)

	data, err := json.Marshal(src.Payload())
	require.NoError(t, err)
	header := nats.Header{
		headerEventType:  []string{src.EventType()},
		headerOccurredAt: []string{src.Timestamp().Format(time.RFC3339Nano)},
	}

	got, err := eventFrom(SubjectFor(src.EventType()), header, data)
	require.NoError(t, err)

	assert.Equal(t, events.TypeInterviewCompleted, got.EventType())
	assert.Equal(t, "interview-1", got.Payload()["interview_id"])
	assert.Equal(t, "candidate-1", got.Payload()["candidate_id"])
	assert.WithinDuration(t, src.Timestamp(), got.Timestamp(), time.Millisecond)
}

func TestEventFromWithoutHeaders(t *testing.T) {
	got, err := eventFrom("careerbridge.job_moderated", nats.Header{}, []byte(`{"job_id":"j1"}`))
	require.NoError(t, err)

	assert.Equal(t, "careerbridge.job_moderated", got.EventType())
	assert.Equal(t, "j1", got.Payload()["job_id"])
	assert.False(t, got.Timestamp().IsZero())
}

func TestEventFromRejectsBadPayload(t *testing.T) {
	_, err := eventFrom("careerbridge.user_registered", nats.Header{}, []byte("not json"))
	assert.Error(t, err)
}
