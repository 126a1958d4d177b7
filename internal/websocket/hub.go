package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"careerbridge-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub tracks the open interview streams. An interview normally has a single
// connection (the candidate), but recruiters may attach as observers, so the
// map holds a list per interview.
type Hub struct {
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.InterviewID] = append(h.clients[client.InterviewID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Stream attached", map[string]interface{}{
				"interview_id": client.InterviewID,
				"user_id":      client.UserID,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.InterviewID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.InterviewID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.InterviewID]) == 0 {
					delete(h.clients, client.InterviewID)
					h.logger.Info("Hub", "Stream closed", map[string]interface{}{"interview_id": client.InterviewID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish sends an event to every connection attached to the interview,
// local and remote.
func (h *Hub) Publish(interviewID uuid.UUID, eventType string, data interface{}) {
	payload, _ := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": data,
	})

	h.deliverLocal(interviewID, payload)

	if h.rdb != nil {
		wrapped, _ := json.Marshal(map[string]interface{}{
			"interview_id": interviewID.String(),
			"message":      json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), "interview_events", wrapped)
	}
}

func (h *Hub) deliverLocal(interviewID uuid.UUID, payload []byte) {
	h.mu.RLock()
	clients, ok := h.clients[interviewID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "Send buffer full, dropping client", map[string]interface{}{
				"interview_id": interviewID,
			})
			close(client.Send)
			h.unregister <- client
		}
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to one shared channel and filters by the
	// interviews it has locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "interview_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			InterviewID string          `json:"interview_id"`
			Message     json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		id, err := uuid.Parse(payload.InterviewID)
		if err != nil {
			continue
		}

		h.deliverLocal(id, payload.Message)
	}
}
