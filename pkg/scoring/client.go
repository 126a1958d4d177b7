// Package scoring submits a finished interview (transcript plus the
// best-effort recording) to the Gemini evaluation endpoint and normalizes
// whatever comes back into a result the client UI can always render.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"careerbridge-be/pkg/interview/session"
	"careerbridge-be/pkg/media"
)

const (
	// MinRecordingBytes is the smallest recording worth analyzing. Anything
	// below short-circuits to the fallback without a network call.
	MinRecordingBytes = 10000

	promptTemplate = `Analyze this technical interview and provide detailed evaluation.
Return ONLY the raw JSON output without any Markdown formatting or additional text.

Required format:
{
  "communication": { "score": 0-10, "feedback": "..." },
  "technical_knowledge": { "score": 0-10, "feedback": "..." },
  "confidence": { "score": 0-10, "feedback": "..." },
  "body_language": { "score": 0-10, "feedback": "..." },
  "overall_score": 0-100,
  "summary": "...",
  "improvement_tips": ["...", "..."]
}

Chat History:
{{CHAT_HISTORY}}`
)

// ErrInsufficientData rejects recordings too short to analyze.
var ErrInsufficientData = errors.New("scoring: recording too short for analysis")

// MalformedEvaluationError covers every non-conforming upstream response:
// transport failure aside, a non-JSON payload or JSON missing overall_score
// or summary are treated uniformly. The raw response text is preserved for
// diagnostics, never parsed further.
type MalformedEvaluationError struct {
	Reason string
	Raw    string
}

func (e *MalformedEvaluationError) Error() string {
	return fmt.Sprintf("scoring: %s", e.Reason)
}

// SubScore is one scored dimension of the evaluation.
type SubScore struct {
	Score    int    `json:"score"` // 0-10
	Feedback string `json:"feedback"`
}

// Evaluation is the structured verdict of the external scorer.
type Evaluation struct {
	Communication      SubScore `json:"communication"`
	TechnicalKnowledge SubScore `json:"technical_knowledge"`
	Confidence         SubScore `json:"confidence"`
	BodyLanguage       SubScore `json:"body_language"`
	OverallScore       int      `json:"overall_score"` // 0-100
	Summary            string   `json:"summary"`
	ImprovementTips    []string `json:"improvement_tips"`
}

// Result is what Evaluate always returns: either the upstream evaluation,
// or an error flag with a deterministic fallback that is guaranteed to be
// renderable. Failures never surface as a bare error to the caller.
type Result struct {
	Error       bool        `json:"error"`
	Message     string      `json:"message,omitempty"`
	RawResponse string      `json:"rawResponse,omitempty"`
	Evaluation  *Evaluation `json:"evaluation,omitempty"`
	Fallback    *Evaluation `json:"fallbackData,omitempty"`
}

// Scored returns whichever evaluation is present, upstream or fallback.
func (r *Result) Scored() *Evaluation {
	if r.Evaluation != nil {
		return r.Evaluation
	}
	return r.Fallback
}

// contentGenerator is the narrow slice of the Gemini client the evaluator
// needs; tests substitute a fake.
type contentGenerator interface {
	GenerateEvaluation(ctx context.Context, prompt string, recording media.Artifact) (string, error)
}

// Client normalizes external interview scoring.
type Client struct {
	generator contentGenerator
}

func NewClient(generator contentGenerator) *Client {
	return &Client{generator: generator}
}

// Evaluate scores the finished interview. It never returns an error: every
// failure path (recording too short, transport failure, unparsable or
// incomplete payload) yields a Result carrying the fallback evaluation.
func (c *Client) Evaluate(ctx context.Context, transcript []session.Message, recording media.Artifact) *Result {
	evaluation, err := c.evaluate(ctx, transcript, recording)
	if err == nil {
		return &Result{Evaluation: evaluation}
	}

	result := &Result{
		Error:    true,
		Message:  err.Error(),
		Fallback: fallbackEvaluation(err.Error()),
	}
	var malformed *MalformedEvaluationError
	if errors.As(err, &malformed) {
		result.RawResponse = malformed.Raw
	}
	return result
}

func (c *Client) evaluate(ctx context.Context, transcript []session.Message, recording media.Artifact) (*Evaluation, error) {
	if recording.SizeBytes < MinRecordingBytes {
		return nil, ErrInsufficientData
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{CHAT_HISTORY}}", renderTranscript(transcript))

	raw, err := c.generator.GenerateEvaluation(ctx, prompt, recording)
	if err != nil {
		return nil, fmt.Errorf("generate evaluation: %w", err)
	}

	return parseEvaluation(raw)
}

func renderTranscript(transcript []session.Message) string {
	var b strings.Builder
	for _, msg := range transcript {
		b.WriteString(msg.Role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseEvaluation requires the response to match the schema minimally:
// valid JSON with a non-zero overall_score and a non-empty summary.
// Sub-score ranges and tip list length are deliberately not validated.
func parseEvaluation(raw string) (*Evaluation, error) {
	cleaned := extractJSON(raw)

	var evaluation Evaluation
	if err := json.Unmarshal([]byte(cleaned), &evaluation); err != nil {
		return nil, &MalformedEvaluationError{
			Reason: fmt.Sprintf("invalid JSON: %v", err),
			Raw:    raw,
		}
	}

	if evaluation.OverallScore == 0 || evaluation.Summary == "" {
		return nil, &MalformedEvaluationError{
			Reason: "incomplete evaluation received",
			Raw:    raw,
		}
	}
	return &evaluation, nil
}

// extractJSON strips markdown code fences the model sometimes wraps its
// JSON in, despite instructions.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}

// fallbackEvaluation backs every error path: all sub-scores zero, the
// triggering error embedded in the summary, two fixed generic tips.
func fallbackEvaluation(msg string) *Evaluation {
	failed := SubScore{Score: 0, Feedback: "Evaluation failed"}
	return &Evaluation{
		Communication:      failed,
		TechnicalKnowledge: failed,
		Confidence:         failed,
		BodyLanguage:       failed,
		OverallScore:       0,
		Summary:            "Could not evaluate: " + msg,
		ImprovementTips: []string{
			"Try re-running the interview.",
			"Make sure the camera and mic were working properly.",
		},
	}
}
