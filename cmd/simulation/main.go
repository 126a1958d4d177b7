package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"careerbridge-be/pkg/interview/evaluate"
	"careerbridge-be/pkg/interview/questionbank"
	"careerbridge-be/pkg/interview/session"
	"careerbridge-be/pkg/speech"
	"careerbridge-be/pkg/speech/mock"

	"github.com/fatih/color"
)

// Runs a full interview offline: scripted candidate answers flow through
// the mock recognizer into the session machine, and the machine's prompts
// go out through the mock synthesizer. Useful for eyeballing question
// selection, follow-up behavior and scoring without a browser.

var script = []string{
	"I spent the last four years building Go services for a logistics platform, mostly around order routing and fleet tracking.",
	"Yes.",
	"The hardest bug was a data race in our dispatch worker pool. I reproduced it with the race detector, then replaced the shared map with a channel-owned state loop.",
	"I would start by profiling. In one case pprof showed 60 percent of CPU in JSON marshaling, so we switched the hot path to precomputed byte slices.",
	"I usually pair with the reviewer on disagreements. Code review works better as a conversation than a verdict.",
	"For schema changes we use expand and contract migrations so deploys stay reversible.",
	"Monitoring first. You cannot fix what you cannot see, so every service ships with RED metrics from day one.",
	"I once led the migration of a monolith cron system onto a message queue. Throughput tripled and retries became free.",
	"Hmm, not sure about that one.",
	"Thanks, this was fun.",
}

func main() {
	bold := color.New(color.Bold)
	interviewer := color.New(color.FgCyan)
	candidate := color.New(color.FgYellow)
	verdict := color.New(color.FgGreen)
	warn := color.New(color.FgRed)

	bold.Println("=== Interview Session Simulation ===")

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	machine := session.NewMachine(questionbank.New(rnd), evaluate.New(rnd), rnd)

	recognizer := mock.NewRecognizer(script...)
	synthesizer := mock.NewSynthesizer()

	first, err := machine.Start(questionbank.DefaultRole)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	prompt := first
	for turn := 1; ; turn++ {
		interviewer.Printf("\n[Q%d] %s\n", turn, prompt)
		synthesizer.Speak(prompt, speech.Options{})

		answer, ok := listen(recognizer)
		if !ok {
			warn.Println("Candidate script exhausted, ending session early.")
			result, err := machine.End()
			if err != nil {
				log.Fatalf("Failed to end session: %v", err)
			}
			printResult(bold, verdict, result)
			return
		}
		candidate.Printf("  >> %s\n", answer)

		next, err := machine.Advance(answer)
		if err != nil {
			log.Fatalf("Failed to advance session: %v", err)
		}

		if turns := machine.Turns(); len(turns) > 0 {
			last := turns[len(turns)-1]
			fmt.Printf("  score %d/5: %s\n", last.Evaluation.Score, last.Evaluation.Feedback)
		}

		if next.Type == session.NextEnd {
			printResult(bold, verdict, next.Result)
			return
		}
		if next.Type == session.NextFollowUp {
			fmt.Println("  (follow-up)")
		}
		prompt = next.Text
	}
}

// listen runs one scripted utterance through the recognizer, printing the
// interim updates the way a live caption would appear.
func listen(r *mock.Recognizer) (string, bool) {
	var final string
	gotFinal := false

	started := r.StartListening(
		func(interim string) {
			fmt.Printf("\r  .. %s", interim)
		},
		func(text string) {
			final = text
			gotFinal = true
		},
	)
	if !started {
		return "", false
	}
	r.StopListening()
	fmt.Print("\r")
	return final, gotFinal
}

func printResult(bold, verdict *color.Color, result *session.FinalResult) {
	bold.Println("\n=== Final Result ===")
	verdict.Printf("Score: %d/100 (%s)\n", result.NormalizedScore, result.ResponseQuality)
	fmt.Printf("Turns: %d, Duration: %ds\n", result.TurnCount, result.DurationSeconds)
	fmt.Printf("Summary: %s\n", result.FeedbackSummary)

	if len(result.Strengths) > 0 {
		fmt.Println("Strengths:")
		for _, s := range result.Strengths {
			fmt.Printf("  + %s\n", s)
		}
	}
	if len(result.Improvements) > 0 {
		fmt.Println("Improvements:")
		for _, s := range result.Improvements {
			fmt.Printf("  - %s\n", s)
		}
	}
}
