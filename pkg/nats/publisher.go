package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"careerbridge-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName holds every marketplace event; subjects fan out per
	// event type underneath SubjectRoot.
	StreamName  = "CAREERBRIDGE"
	SubjectRoot = "careerbridge"

	headerEventType  = "Event-Type"
	headerOccurredAt = "Occurred-At"
)

// SubjectFor maps an event type code onto the stream's subject space:
// INTERVIEW_COMPLETED publishes on careerbridge.interview_completed.
func SubjectFor(eventType string) string {
	return SubjectRoot + "." + strings.ToLower(eventType)
}

// Publisher sends marketplace events onto the JetStream bus.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewPublisher(url string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      StreamName,
		Subjects:  []string{SubjectRoot + ".>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    7 * 24 * time.Hour,
	})
	if err != nil {
		log.Printf("Warn: Failed to ensure stream %q: %v", StreamName, err)
		// Don't fail hard here, maybe it already exists or NATS isn't ready
	}

	return &Publisher{nc: nc, js: js}, nil
}

// Publish serializes the event payload and stamps the event type and
// occurrence time into headers so subscribers get them back verbatim.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := &nats.Msg{
		Subject: SubjectFor(event.EventType()),
		Data:    data,
		Header: nats.Header{
			headerEventType:  []string{event.EventType()},
			headerOccurredAt: []string{event.Timestamp().Format(time.RFC3339Nano)},
		},
	}

	if _, err := p.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to subject %s: %w", msg.Subject, err)
	}

	return nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
