package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careerbridge-be/pkg/interview/session"
	"careerbridge-be/pkg/media"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (f *fakeGenerator) GenerateEvaluation(ctx context.Context, prompt string, recording media.Artifact) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.response, f.err
}

func bigArtifact() media.Artifact {
	return media.Artifact{
		Data:      make([]byte, MinRecordingBytes),
		MimeType:  media.DefaultMimeType,
		SizeBytes: MinRecordingBytes,
	}
}

func transcript() []session.Message {
	return []session.Message{
		{Role: "assistant", Content: "Tell me about yourself."},
		{Role: "user", Content: "I build backend services."},
	}
}

const validPayload = `{
  "communication": {"score": 8, "feedback": "clear"},
  "technical_knowledge": {"score": 7, "feedback": "solid"},
  "confidence": {"score": 6, "feedback": "steady"},
  "body_language": {"score": 5, "feedback": "fine"},
  "overall_score": 72,
  "summary": "A solid candidate.",
  "improvement_tips": ["Practice more", "Give examples"]
}`

func TestEvaluateParsesWellFormedResponse(t *testing.T) {
	gen := &fakeGenerator{response: validPayload}
	c := NewClient(gen)

	result := c.Evaluate(context.Background(), transcript(), bigArtifact())

	if result.Error {
		t.Fatalf("unexpected error result: %s", result.Message)
	}
	if result.Evaluation == nil {
		t.Fatal("missing evaluation")
	}
	if result.Evaluation.OverallScore != 72 {
		t.Errorf("overall = %d, want 72", result.Evaluation.OverallScore)
	}
	if result.Evaluation.Communication.Score != 8 {
		t.Errorf("communication = %d, want 8", result.Evaluation.Communication.Score)
	}
	if !strings.Contains(gen.prompt, "assistant: Tell me about yourself.") {
		t.Errorf("transcript missing from prompt:\n%s", gen.prompt)
	}
}

func TestEvaluateStripsMarkdownFences(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + validPayload + "\n```"}
	c := NewClient(gen)

	result := c.Evaluate(context.Background(), transcript(), bigArtifact())
	if result.Error {
		t.Fatalf("fenced JSON should still parse: %s", result.Message)
	}
	if result.Evaluation.OverallScore != 72 {
		t.Errorf("overall = %d, want 72", result.Evaluation.OverallScore)
	}
}

func TestEvaluateMalformedJSONFallsBack(t *testing.T) {
	gen := &fakeGenerator{response: "I am not JSON at all"}
	c := NewClient(gen)

	result := c.Evaluate(context.Background(), transcript(), bigArtifact())

	if !result.Error {
		t.Fatal("expected error result")
	}
	if result.Fallback == nil {
		t.Fatal("missing fallback evaluation")
	}
	if result.Fallback.OverallScore != 0 {
		t.Errorf("fallback overall = %d, want 0", result.Fallback.OverallScore)
	}
	if len(result.Fallback.ImprovementTips) != 2 {
		t.Errorf("fallback tips = %d, want 2", len(result.Fallback.ImprovementTips))
	}
	if result.RawResponse != "I am not JSON at all" {
		t.Errorf("raw response not preserved: %q", result.RawResponse)
	}
	if !strings.Contains(result.Fallback.Summary, "Could not evaluate:") {
		t.Errorf("summary should embed the error: %q", result.Fallback.Summary)
	}
}

func TestEvaluateIncompletePayloadFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing overall_score", `{"summary": "fine"}`},
		{"missing summary", `{"overall_score": 50}`},
		{"zero overall_score", `{"overall_score": 0, "summary": "fine"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(&fakeGenerator{response: tt.payload})
			result := c.Evaluate(context.Background(), transcript(), bigArtifact())
			if !result.Error {
				t.Fatal("expected error result")
			}
			if result.RawResponse != tt.payload {
				t.Errorf("raw = %q, want %q", result.RawResponse, tt.payload)
			}
		})
	}
}

func TestEvaluateShortRecordingSkipsNetworkCall(t *testing.T) {
	gen := &fakeGenerator{response: validPayload}
	c := NewClient(gen)

	small := media.Artifact{Data: []byte("tiny"), MimeType: media.DefaultMimeType, SizeBytes: 4}
	result := c.Evaluate(context.Background(), transcript(), small)

	if !result.Error {
		t.Fatal("expected error result for short recording")
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0", gen.calls)
	}
	if result.Fallback == nil || result.Fallback.OverallScore != 0 {
		t.Error("expected zero-score fallback")
	}
}

func TestEvaluateTransportFailureFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection reset")}
	c := NewClient(gen)

	result := c.Evaluate(context.Background(), transcript(), bigArtifact())

	if !result.Error {
		t.Fatal("expected error result")
	}
	if !strings.Contains(result.Message, "connection reset") {
		t.Errorf("message should carry the transport error: %q", result.Message)
	}
	if result.Scored() != result.Fallback {
		t.Error("Scored should surface the fallback on error")
	}
}
