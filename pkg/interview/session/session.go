package session

import (
	"math/rand"
	"sync"
	"time"

	"careerbridge-be/pkg/interview/evaluate"
	"careerbridge-be/pkg/interview/questionbank"

	"github.com/google/uuid"
)

type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in_progress"
	StatusEnded      Status = "ended"
)

const (
	// followUpProbability is the chance of probing once the primary
	// questions are exhausted.
	followUpProbability = 0.3

	// maxAskedQuestions caps primary + follow-up questions, guaranteeing
	// termination regardless of follow-up draws.
	maxAskedQuestions = 10
)

// Turn is one question/response/evaluation triple. Never mutated once
// appended.
type Turn struct {
	Question   string              `json:"question"`
	Response   string              `json:"response"`
	Evaluation evaluate.Evaluation `json:"evaluation"`
	At         time.Time           `json:"at"`
}

// Message is one entry of the session transcript.
type Message struct {
	Role      string    `json:"role"` // "assistant" | "user"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NextType tags what Advance produced.
type NextType string

const (
	NextQuestion NextType = "question"
	NextFollowUp NextType = "followUp"
	NextEnd      NextType = "end"
)

// Next is the outcome of one Advance call: either the next prompt to show
// the candidate, or the final result when the session just ended.
type Next struct {
	Type   NextType     `json:"type"`
	Text   string       `json:"text,omitempty"`
	IsLast bool         `json:"isLast,omitempty"`
	Result *FinalResult `json:"result,omitempty"`
}

// FinalResult is the terminal, client-facing summary of a completed
// session. Produced exactly once at End.
type FinalResult struct {
	NormalizedScore int      `json:"normalizedScore"` // 0-100
	FeedbackSummary string   `json:"feedbackSummary"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	ResponseQuality string   `json:"responseQuality"`
	TurnCount       int      `json:"turnCount"`
	DurationSeconds int      `json:"durationSeconds"`
}

// Machine drives a single interview from start to finish. It exclusively
// owns the session state; exactly one Machine is active per interview.
//
// States: created -> in_progress -> ended (terminal). Advance and End hold
// an in-flight guard: a second call while one is outstanding is rejected
// with ErrSessionBusy rather than queued.
type Machine struct {
	bank *questionbank.Bank
	eval *evaluate.Evaluator
	rnd  *rand.Rand

	mu       sync.Mutex
	inFlight bool

	id           uuid.UUID
	role         string
	questions    []string
	currentIndex int
	turns        []Turn
	totalScore   int
	askedCount   int // primary + follow-up prompts issued so far
	lastPrompt   string
	startedAt    time.Time
	endedAt      *time.Time
	status       Status
	result       *FinalResult
}

func NewMachine(bank *questionbank.Bank, eval *evaluate.Evaluator, rnd *rand.Rand) *Machine {
	return &Machine{
		bank:   bank,
		eval:   eval,
		rnd:    rnd,
		status: StatusCreated,
	}
}

// Start constructs the session for the given role and returns the first
// question. The question set is fixed at creation and immutable afterwards.
func (m *Machine) Start(role string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusCreated {
		return "", ErrAlreadyEnded
	}

	questions := m.bank.QuestionsFor(role)
	if len(questions) == 0 {
		return "", ErrInvalidRole
	}

	m.id = uuid.New()
	m.role = role
	m.questions = questions
	m.currentIndex = 0
	m.startedAt = time.Now()
	m.status = StatusInProgress

	first := questions[0]
	m.lastPrompt = first
	m.askedCount = 1
	return first, nil
}

// Advance records the candidate's response to the current prompt, scores
// it, and decides what happens next: the next primary question, a
// follow-up probe, or the end of the interview.
func (m *Machine) Advance(response string) (*Next, error) {
	if err := m.acquire(); err != nil {
		return nil, err
	}
	defer m.release()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusInProgress {
		return nil, ErrNoActiveSession
	}

	evaluation := m.eval.Evaluate(response)
	m.turns = append(m.turns, Turn{
		Question:   m.lastPrompt,
		Response:   response,
		Evaluation: evaluation,
		At:         time.Now(),
	})
	m.totalScore += evaluation.Score

	if m.currentIndex < len(m.questions) {
		m.currentIndex++
	}

	if m.currentIndex >= len(m.questions) {
		return m.followUpOrEnd()
	}

	next := m.questions[m.currentIndex]
	m.lastPrompt = next
	m.askedCount++
	return &Next{
		Type:   NextQuestion,
		Text:   next,
		IsLast: m.currentIndex == len(m.questions)-1,
	}, nil
}

// followUpOrEnd is only reached once all primary questions are exhausted.
// With probability 0.3, and only while under the total-question ceiling,
// one more probing prompt is issued; otherwise the session ends.
// Caller holds m.mu.
func (m *Machine) followUpOrEnd() (*Next, error) {
	if m.rnd.Float64() < followUpProbability && m.askedCount < maxAskedQuestions {
		followUp := m.bank.FollowUp()
		m.lastPrompt = followUp
		m.askedCount++
		return &Next{Type: NextFollowUp, Text: followUp}, nil
	}

	result, err := m.end()
	if err != nil {
		return nil, err
	}
	return &Next{Type: NextEnd, Result: result}, nil
}

// End terminates the session and produces the FinalResult. Guarded against
// double invocation: a second call fails with ErrAlreadyEnded and the
// first result is left untouched.
func (m *Machine) End() (*FinalResult, error) {
	if err := m.acquire(); err != nil {
		return nil, err
	}
	defer m.release()

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.end()
}

// end computes the final score and feedback bundle. Caller holds m.mu.
func (m *Machine) end() (*FinalResult, error) {
	switch m.status {
	case StatusEnded:
		return nil, ErrAlreadyEnded
	case StatusCreated:
		return nil, ErrNoActiveSession
	}

	now := time.Now()
	m.endedAt = &now
	m.status = StatusEnded

	// Guard the zero-question denominator; an empty set scores 0.
	score := 0
	if len(m.questions) > 0 {
		maxPossible := len(m.questions) * 5
		score = int(float64(m.totalScore)/float64(maxPossible)*100 + 0.5)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	band := bandFor(score)
	m.result = &FinalResult{
		NormalizedScore: score,
		FeedbackSummary: band.overall,
		Strengths:       band.strengths,
		Improvements:    band.improvements,
		ResponseQuality: band.responseQuality,
		TurnCount:       len(m.turns),
		DurationSeconds: int(now.Sub(m.startedAt).Seconds()),
	}
	return m.result, nil
}

func (m *Machine) acquire() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight {
		return ErrSessionBusy
	}
	m.inFlight = true
	return nil
}

func (m *Machine) release() {
	m.mu.Lock()
	m.inFlight = false
	m.mu.Unlock()
}

// Accessors. The session state itself is only mutated through Start,
// Advance and End.

func (m *Machine) ID() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

func (m *Machine) Role() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.role
}

func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *Machine) Questions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.questions))
	copy(out, m.questions)
	return out
}

func (m *Machine) Turns() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

func (m *Machine) Result() *FinalResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Transcript rebuilds the prompt/answer history as an ordered message
// list, trailing prompt included when it has no answer yet.
func (m *Machine) Transcript() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := make([]Message, 0, len(m.turns)*2+1)
	for _, turn := range m.turns {
		history = append(history,
			Message{Role: "assistant", Content: turn.Question, Timestamp: turn.At},
			Message{Role: "user", Content: turn.Response, Timestamp: turn.At},
		)
	}
	if m.status == StatusInProgress && (len(m.turns) == 0 || m.lastPrompt != m.turns[len(m.turns)-1].Question) {
		history = append(history, Message{Role: "assistant", Content: m.lastPrompt, Timestamp: time.Now()})
	}
	return history
}
