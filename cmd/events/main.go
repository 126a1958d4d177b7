package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"careerbridge-be/internal/config"
	"careerbridge-be/pkg/events"
	pktNats "careerbridge-be/pkg/nats"

	"github.com/fatih/color"
)

// Tails the marketplace event bus. Useful when checking that moderation and
// interview events actually reach downstream consumers.
func main() {
	subject := flag.String("subject", pktNats.SubjectRoot+".>", "subject filter under the event stream")
	durable := flag.String("durable", "event-tail", "durable consumer name")
	flag.Parse()

	cfg := config.Load()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer sub.Close()

	bold := color.New(color.Bold, color.FgCyan)
	dim := color.New(color.FgHiBlack)

	err = sub.Subscribe(*subject, *durable, func(ctx context.Context, evt events.Event) error {
		payload, _ := json.MarshalIndent(evt.Payload(), "  ", "  ")
		bold.Printf("%s", evt.EventType())
		dim.Printf("  %s\n", evt.Timestamp().Format("15:04:05.000"))
		color.White("  %s", payload)
		return nil
	})
	if err != nil {
		log.Fatalf("subscribe: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}
