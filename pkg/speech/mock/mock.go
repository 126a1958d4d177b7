// Package mock provides scriptable speech adapters for tests and local
// development without a real speech provider.
package mock

import (
	"strings"
	"sync"

	"careerbridge-be/pkg/speech"
)

// Recognizer replays scripted utterances: each utterance is delivered
// word-by-word as interim updates, then in full as the final transcript
// when StopListening is called.
type Recognizer struct {
	mu        sync.Mutex
	script    []string
	cursor    int
	listening bool
	onFinal   speech.Transcript
	pending   string
}

func NewRecognizer(script ...string) *Recognizer {
	return &Recognizer{script: script}
}

func (r *Recognizer) Supported() bool { return true }

func (r *Recognizer) StartListening(onInterim, onFinal speech.Transcript) bool {
	r.mu.Lock()
	if r.listening || r.cursor >= len(r.script) {
		r.mu.Unlock()
		return false
	}
	utterance := r.script[r.cursor]
	r.cursor++
	r.listening = true
	r.onFinal = onFinal
	r.pending = utterance
	r.mu.Unlock()

	if onInterim != nil {
		words := strings.Fields(utterance)
		for i := range words {
			onInterim(strings.Join(words[:i+1], " "))
		}
	}
	return true
}

func (r *Recognizer) StopListening() bool {
	r.mu.Lock()
	if !r.listening {
		r.mu.Unlock()
		return false
	}
	r.listening = false
	final := r.onFinal
	text := r.pending
	r.mu.Unlock()

	if final != nil {
		final(text)
	}
	return true
}

// Synthesizer records spoken prompts for assertions.
type Synthesizer struct {
	mu     sync.Mutex
	spoken []string
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

func (s *Synthesizer) Speak(text string, opts speech.Options) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spoken = append(s.spoken, text)
	return true
}

func (s *Synthesizer) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.spoken) > 0
}

func (s *Synthesizer) Spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.spoken))
	copy(out, s.spoken)
	return out
}
