package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"
	"careerbridge-be/pkg/events"
	"careerbridge-be/pkg/interview/session"
	"careerbridge-be/pkg/media"
	pktNats "careerbridge-be/pkg/nats"
	"careerbridge-be/pkg/scoring"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	scoringClient  *scoring.Client
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	scoringClient *scoring.Client,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		scoringClient:  scoringClient,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EvaluateInterviewMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Evaluating interview %s", payload.InterviewId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByID{ID: payload.InterviewId})
	if err != nil {
		log.Printf("[ERROR] Failed to get interview %s: %v", payload.InterviewId, err)
		msg.Nack() // Retriable
		return
	}
	if interview == nil {
		log.Printf("[ERROR] Interview not found: %s", payload.InterviewId)
		msg.Ack()
		return
	}

	transcript := make([]session.Message, len(interview.ChatHistory))
	for i, m := range interview.ChatHistory {
		transcript[i] = session.Message{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}

	var recording media.Artifact
	if interview.RecordingURL != nil {
		data, readErr := os.ReadFile(*interview.RecordingURL)
		if readErr != nil {
			log.Printf("[WARN] Could not read recording for %s: %v", payload.InterviewId, readErr)
		} else {
			recording = media.Artifact{
				Data:      data,
				MimeType:  media.DefaultMimeType,
				SizeBytes: len(data),
			}
		}
	}

	result := cs.scoringClient.Evaluate(ctx, transcript, recording)
	scored := result.Scored()

	evaluation := &entity.InterviewEvaluation{
		Communication:      entity.SubScore(scored.Communication),
		TechnicalKnowledge: entity.SubScore(scored.TechnicalKnowledge),
		Confidence:         entity.SubScore(scored.Confidence),
		BodyLanguage:       entity.SubScore(scored.BodyLanguage),
		OverallScore:       scored.OverallScore,
		Summary:            scored.Summary,
		ImprovementTips:    scored.ImprovementTips,
		Fallback:           result.Error,
	}

	if err := uow.InterviewRepository().SaveEvaluation(ctx, interview.Id, evaluation); err != nil {
		log.Printf("[ERROR] Failed to save evaluation for %s: %v", interview.Id, err)
		msg.Nack()
		return
	}
	if err := uow.InterviewRepository().UpdateStatus(ctx, interview.Id, string(entity.InterviewStatusEvaluated)); err != nil {
		log.Printf("[ERROR] Failed to update interview status for %s: %v", interview.Id, err)
		msg.Nack()
		return
	}
	if err := uow.ApplicationRepository().UpdateStatus(ctx, interview.ApplicationId, string(entity.ApplicationStatusInterviewed)); err != nil {
		log.Printf("[WARN] Failed to update application status for %s: %v", interview.ApplicationId, err)
	}

	if cs.eventPublisher != nil {
		evt := events.NewInterviewCompletedEvent(interview.Id.String(), interview.CandidateId.String(), scored.OverallScore)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish INTERVIEW_COMPLETED event: %v\n", err)
		}
	}

	msg.Ack()
}
