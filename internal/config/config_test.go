package config

import (
	"os"
	"testing"

	"careerbridge-be/pkg/scoring"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"GEMINI_EVALUATION_MODEL", "RECORDING_DIR", "EVALUATE_INTERVIEW_TOPIC_NAME"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	// The evaluation model default is owned by the scoring package so the
	// generator fallback and the configured value can never diverge.
	assert.Equal(t, scoring.DefaultModel, cfg.Interview.GeminiModel)
	assert.Equal(t, "./recordings", cfg.Interview.RecordingDir)
	assert.Equal(t, "EVALUATE_INTERVIEW", cfg.Keys.EvaluateInterviewTopic)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("GEMINI_EVALUATION_MODEL", "gemini-exp")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	assert.Equal(t, "gemini-exp", cfg.Interview.GeminiModel)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}
