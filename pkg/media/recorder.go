package media

import (
	"errors"
	"sync"
	"time"
)

const (
	// DefaultMimeType matches the low-bitrate webm profile recorded by the
	// interview client.
	DefaultMimeType = "video/webm"

	// ChunkInterval is the target cadence at which the client flushes
	// recording chunks.
	ChunkInterval = time.Second

	// VideoBitsPerSecond keeps recordings small enough to ship inline to
	// the evaluator.
	VideoBitsPerSecond = 100000
)

var (
	// ErrDeviceAccess is reported when the capture source denies access
	// (permission refused, no camera/microphone). The interview itself
	// proceeds chat-only; recording is best effort.
	ErrDeviceAccess = errors.New("media: device access denied")

	// ErrCaptureActive is returned by Start while a capture is running.
	ErrCaptureActive = errors.New("media: capture already active")
)

type State string

const (
	StateInactive  State = "inactive"
	StateRecording State = "recording"
	StatePaused    State = "paused"
)

// Artifact is the composed recording returned by Stop.
type Artifact struct {
	Data      []byte `json:"-"`
	MimeType  string `json:"mimeType"`
	SizeBytes int    `json:"sizeBytes"`
	// Duration approximates seconds recorded, one chunk per second.
	Duration int `json:"duration"`
}

// Recorder accumulates interval-flushed recording chunks in memory. The
// chunks arrive from the capture source (the interview client's stream);
// Stop concatenates them into a single artifact and releases the buffer
// unconditionally.
type Recorder struct {
	mu       sync.Mutex
	state    State
	mimeType string
	chunks   [][]byte
}

func NewRecorder() *Recorder {
	return &Recorder{state: StateInactive, mimeType: DefaultMimeType}
}

// Start begins a capture. Fails with ErrCaptureActive when one is already
// running.
func (r *Recorder) Start(mimeType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateInactive {
		return ErrCaptureActive
	}
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	r.mimeType = mimeType
	r.chunks = nil
	r.state = StateRecording
	return nil
}

// Append buffers one chunk. Chunks received while paused or inactive are
// dropped.
func (r *Recorder) Append(chunk []byte) {
	if len(chunk) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRecording {
		return
	}
	buf := make([]byte, len(chunk))
	copy(buf, chunk)
	r.chunks = append(r.chunks, buf)
}

// Stop flushes and concatenates the buffered chunks and releases the
// buffer. Safe to call when no capture is active: it returns an empty
// artifact, so double invocation is harmless.
func (r *Recorder) Stop() Artifact {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := 0
	for _, c := range r.chunks {
		size += len(c)
	}
	data := make([]byte, 0, size)
	for _, c := range r.chunks {
		data = append(data, c...)
	}

	artifact := Artifact{
		Data:      data,
		MimeType:  r.mimeType,
		SizeBytes: size,
		Duration:  len(r.chunks),
	}

	r.chunks = nil
	r.state = StateInactive
	return artifact
}

// Pause suspends buffering without dropping what was recorded.
func (r *Recorder) Pause() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRecording {
		return false
	}
	r.state = StatePaused
	return true
}

func (r *Recorder) Resume() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StatePaused {
		return false
	}
	r.state = StateRecording
	return true
}

func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == StateRecording
}

func (r *Recorder) CurrentState() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
