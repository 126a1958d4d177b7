package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerbridge-be/pkg/media"

	"google.golang.org/genai"
)

// DefaultModel is used when no evaluation model is configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiGenerator implements contentGenerator against the Gemini API,
// shipping the recording inline alongside the transcript prompt.
type GeminiGenerator struct {
	client    *genai.Client
	modelName string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}

	return &GeminiGenerator{client: client, modelName: model}, nil
}

func (g *GeminiGenerator) GenerateEvaluation(ctx context.Context, prompt string, recording media.Artifact) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{
				MIMEType: recording.MimeType,
				Data:     recording.Data,
			}},
			{Text: prompt},
		},
	}}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.3),
		TopP:             genai.Ptr[float32](0.8),
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

func (g *GeminiGenerator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
