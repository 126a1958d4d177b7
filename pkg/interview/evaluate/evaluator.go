package evaluate

import (
	"math/rand"
	"strings"
)

// Evaluation is the structured score for a single candidate answer.
type Evaluation struct {
	Score    int     `json:"score"` // 1-5
	Feedback string  `json:"feedback"`
	Details  Details `json:"details"`
}

type Details struct {
	Clarity   int `json:"clarity"`   // 1-5
	Relevance int `json:"relevance"` // 1-5
	Depth     int `json:"depth"`     // 1-5
}

// Evaluator scores an answer from its word count. It is a deterministic
// stand-in for a real NLP scorer; only the relevance detail is drawn from
// the injected random source (a real semantic judgment would replace it
// without changing the interface).
type Evaluator struct {
	rnd *rand.Rand
}

func New(rnd *rand.Rand) *Evaluator {
	return &Evaluator{rnd: rnd}
}

// Evaluate scores one response. Empty or whitespace-only input lands in the
// minimum band. There are no failure modes.
func (e *Evaluator) Evaluate(response string) Evaluation {
	wordCount := len(strings.Fields(response))

	var score int
	var feedback string
	switch {
	case wordCount < 10:
		score = 1
		feedback = "Your answer was too brief. Consider providing more details."
	case wordCount < 30:
		score = 2
		feedback = "Your answer was somewhat brief. Try to elaborate more."
	case wordCount < 50:
		score = 3
		feedback = "Decent answer. Good level of detail."
	case wordCount < 100:
		score = 4
		feedback = "Good answer with substantial detail."
	default:
		score = 5
		feedback = "Excellent, comprehensive answer."
	}

	return Evaluation{
		Score:    score,
		Feedback: feedback,
		Details: Details{
			Clarity:   clamp(wordCount / 20),
			Relevance: e.rnd.Intn(3) + 3, // 3-5
			Depth:     clamp(wordCount / 25),
		},
	}
}

func clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
