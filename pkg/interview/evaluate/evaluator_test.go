package evaluate

import (
	"math/rand"
	"strings"
	"testing"
)

func answerOf(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestEvaluateScoreBands(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		wantScore    int
		wantFeedback string
	}{
		{"empty", "", 1, "Your answer was too brief. Consider providing more details."},
		{"whitespace only", "   \t  ", 1, "Your answer was too brief. Consider providing more details."},
		{"nine words", answerOf(9), 1, "Your answer was too brief. Consider providing more details."},
		{"ten words", answerOf(10), 2, "Your answer was somewhat brief. Try to elaborate more."},
		{"twenty nine words", answerOf(29), 2, "Your answer was somewhat brief. Try to elaborate more."},
		{"forty words", answerOf(40), 3, "Decent answer. Good level of detail."},
		{"ninety nine words", answerOf(99), 4, "Good answer with substantial detail."},
		{"one hundred words", answerOf(100), 5, "Excellent, comprehensive answer."},
	}

	e := New(rand.New(rand.NewSource(1)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(tt.response)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Feedback != tt.wantFeedback {
				t.Errorf("feedback = %q, want %q", got.Feedback, tt.wantFeedback)
			}
		})
	}
}

func TestEvaluateDetailRanges(t *testing.T) {
	e := New(rand.New(rand.NewSource(2)))

	for _, words := range []int{0, 5, 20, 40, 75, 150, 400} {
		got := e.Evaluate(answerOf(words))

		if got.Details.Clarity < 1 || got.Details.Clarity > 5 {
			t.Errorf("%d words: clarity %d out of range", words, got.Details.Clarity)
		}
		if got.Details.Depth < 1 || got.Details.Depth > 5 {
			t.Errorf("%d words: depth %d out of range", words, got.Details.Depth)
		}
		if got.Details.Relevance < 3 || got.Details.Relevance > 5 {
			t.Errorf("%d words: relevance %d out of range", words, got.Details.Relevance)
		}
	}
}

func TestEvaluateClarityAndDepthTrackWordCount(t *testing.T) {
	e := New(rand.New(rand.NewSource(3)))

	got := e.Evaluate(answerOf(60))
	if got.Details.Clarity != 3 { // 60/20
		t.Errorf("clarity = %d, want 3", got.Details.Clarity)
	}
	if got.Details.Depth != 2 { // 60/25
		t.Errorf("depth = %d, want 2", got.Details.Depth)
	}
}
