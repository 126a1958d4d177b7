// Package speech defines the capability contracts for speech-to-text and
// text-to-speech around an interview session. Both capabilities are
// optional: availability is reported through boolean returns and the
// interview proceeds chat-only when a provider is missing.
package speech

// Transcript receives transcript text from the recognizer.
type Transcript func(text string)

// Recognizer delivers interim transcript updates continuously and a final
// transcript on natural speech end or an explicit StopListening call.
type Recognizer interface {
	// StartListening begins continuous transcription. Returns false when
	// speech recognition is unavailable.
	StartListening(onInterim, onFinal Transcript) bool

	// StopListening ends the session, triggering the final transcript
	// callback. Returns false when nothing was listening.
	StopListening() bool

	// Supported reports whether the capability exists at all.
	Supported() bool
}

// Options tunes synthesized speech playback.
type Options struct {
	Rate   float64
	Pitch  float64
	Volume float64
}

// Synthesizer plays prompts back to the candidate. At most one utterance is
// audible at a time: Speak cancels any in-flight utterance first.
type Synthesizer interface {
	// Speak voices the text. Returns false when synthesis is unavailable.
	Speak(text string, opts Options) bool

	// Stop cancels the current utterance, if any.
	Stop() bool
}

// Unavailable is the chat-only stand-in used when no speech provider is
// configured.
type Unavailable struct{}

func (Unavailable) StartListening(onInterim, onFinal Transcript) bool { return false }
func (Unavailable) StopListening() bool                               { return false }
func (Unavailable) Supported() bool                                   { return false }
func (Unavailable) Speak(text string, opts Options) bool              { return false }
func (Unavailable) Stop() bool                                        { return false }
