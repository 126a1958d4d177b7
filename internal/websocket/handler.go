package websocket

import (
	"context"
	"encoding/json"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/pkg/logger"
	"careerbridge-be/internal/service"
	"careerbridge-be/pkg/media"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ControlMessage is the JSON frame the browser sends alongside binary media
// chunks.
type ControlMessage struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Final    bool   `json:"final,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Message  string `json:"message,omitempty"`
}

// StreamHandler drives one interview stream: candidate responses advance the
// session, binary frames feed the recorder, interim transcripts are fanned
// out to observers.
type StreamHandler struct {
	interviewService service.IInterviewService
	logger           logger.ILogger
}

func NewStreamHandler(interviewService service.IInterviewService, log logger.ILogger) *StreamHandler {
	return &StreamHandler{
		interviewService: interviewService,
		logger:           log,
	}
}

// ServeStream handles a websocket connection for one interview.
func (h *StreamHandler) ServeStream(hub *Hub, c *websocket.Conn, interviewID, userID uuid.UUID) {
	client := &Client{
		Hub:         hub,
		Conn:        c,
		InterviewID: interviewID,
		UserID:      userID,
		Send:        make(chan []byte, 256),
		handler:     h,
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // blocks until the connection drops
}

func (h *StreamHandler) HandleChunk(c *Client, chunk []byte) {
	if err := h.interviewService.AppendRecordingChunk(context.Background(), c.InterviewID, chunk); err != nil {
		h.logger.Warn("Stream", "Dropped media chunk", map[string]interface{}{
			"interview_id": c.InterviewID,
			"error":        err.Error(),
		})
	}
}

func (h *StreamHandler) HandleControl(c *Client, data []byte) {
	var msg ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.logger.Warn("Stream", "Malformed control frame", map[string]interface{}{
			"interview_id": c.InterviewID,
		})
		return
	}

	ctx := context.Background()

	switch msg.Type {
	case "recording_start":
		mimeType := msg.MimeType
		if mimeType == "" {
			mimeType = media.DefaultMimeType
		}
		if err := h.interviewService.StartRecording(ctx, c.InterviewID, mimeType); err != nil {
			c.Hub.Publish(c.InterviewID, "error", map[string]string{"message": err.Error()})
		}

	case "recording_stop":
		if err := h.interviewService.StopRecording(ctx, c.InterviewID); err != nil {
			h.logger.Warn("Stream", "Failed to store recording", map[string]interface{}{
				"interview_id": c.InterviewID,
				"error":        err.Error(),
			})
			return
		}
		c.Hub.Publish(c.InterviewID, "recording_saved", nil)

	case "device_error":
		// The browser could not open the camera or microphone. The interview
		// continues without a recording; the evaluator falls back later.
		h.logger.Warn("Stream", "Capture device unavailable", map[string]interface{}{
			"interview_id": c.InterviewID,
			"message":      msg.Message,
		})
		c.Hub.Publish(c.InterviewID, "recording_unavailable", map[string]string{"message": msg.Message})

	case "transcript":
		// Interim speech recognition text, fanned out to observers only.
		c.Hub.Publish(c.InterviewID, "transcript", map[string]interface{}{
			"text":  msg.Text,
			"final": msg.Final,
		})

	case "response":
		next, err := h.interviewService.AdvanceSession(ctx, c.InterviewID, &dto.AdvanceSessionRequest{Response: msg.Text})
		if err != nil {
			c.Hub.Publish(c.InterviewID, "error", map[string]string{"message": err.Error()})
			return
		}
		c.Hub.Publish(c.InterviewID, "next", next)

	case "end":
		result, err := h.interviewService.EndSession(ctx, c.InterviewID)
		if err != nil {
			c.Hub.Publish(c.InterviewID, "error", map[string]string{"message": err.Error()})
			return
		}
		c.Hub.Publish(c.InterviewID, "result", result)

	default:
		h.logger.Warn("Stream", "Unknown control type", map[string]interface{}{
			"interview_id": c.InterviewID,
			"type":         msg.Type,
		})
	}
}

// HandleDisconnect finalizes the recording if the connection drops while a
// capture is still open.
func (h *StreamHandler) HandleDisconnect(c *Client) {
	if err := h.interviewService.StopRecording(context.Background(), c.InterviewID); err == nil {
		h.logger.Info("Stream", "Recording flushed on disconnect", map[string]interface{}{
			"interview_id": c.InterviewID,
		})
	}
}
