package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"careerbridge-be/internal/dto"
	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/pkg/mailer"
	"careerbridge-be/internal/repository/memory"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"
	"careerbridge-be/pkg/events"
	"careerbridge-be/pkg/interview/evaluate"
	"careerbridge-be/pkg/interview/questionbank"
	"careerbridge-be/pkg/interview/session"
	"careerbridge-be/pkg/media"
	pktNats "careerbridge-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	// ErrInterviewNotFound distinguishes a missing interview from state
	// conflicts so the controller can answer 404 instead of 409.
	ErrInterviewNotFound = errors.New("interview not found")

	// ErrInterviewForbidden is returned when a candidate touches an
	// interview scheduled for someone else.
	ErrInterviewForbidden = errors.New("interview does not belong to this candidate")
)

type IInterviewService interface {
	Schedule(ctx context.Context, recruiterId uuid.UUID, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error)
	ListByCandidate(ctx context.Context, candidateId uuid.UUID) ([]dto.InterviewResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.InterviewResponse, error)

	StartSession(ctx context.Context, interviewId, candidateId uuid.UUID) (*dto.StartSessionResponse, error)
	AdvanceSession(ctx context.Context, interviewId uuid.UUID, req *dto.AdvanceSessionRequest) (*dto.AdvanceSessionResponse, error)
	EndSession(ctx context.Context, interviewId uuid.UUID) (*dto.SessionResultResponse, error)

	StartRecording(ctx context.Context, interviewId uuid.UUID, mimeType string) error
	AppendRecordingChunk(ctx context.Context, interviewId uuid.UUID, chunk []byte) error
	StopRecording(ctx context.Context, interviewId uuid.UUID) error
}

type interviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.SessionRepository
	recorders        *memory.RecorderRepository
	emailService     mailer.IEmailService
	eventPublisher   *pktNats.Publisher
	publisherService IPublisherService
	recordingDir     string
	frontendURL      string
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	recorders *memory.RecorderRepository,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	publisherService IPublisherService,
	recordingDir string,
	frontendURL string,
) IInterviewService {
	return &interviewService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		recorders:        recorders,
		emailService:     emailService,
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
		recordingDir:     recordingDir,
		frontendURL:      frontendURL,
	}
}

func sessionResultOf(r *session.FinalResult) *dto.SessionResultResponse {
	if r == nil {
		return nil
	}
	return &dto.SessionResultResponse{
		Score:           r.NormalizedScore,
		Feedback:        r.FeedbackSummary,
		Strengths:       r.Strengths,
		Improvements:    r.Improvements,
		ResponseQuality: r.ResponseQuality,
		TurnCount:       r.TurnCount,
		DurationSeconds: r.DurationSeconds,
	}
}

func interviewResponseOf(i *entity.Interview) dto.InterviewResponse {
	res := dto.InterviewResponse{
		Id:            i.Id,
		ApplicationId: i.ApplicationId,
		CandidateId:   i.CandidateId,
		Role:          i.Role,
		ScheduledAt:   i.ScheduledAt,
		StartedAt:     i.StartedAt,
		EndedAt:       i.EndedAt,
		Status:        string(i.Status),
		ChatHistory:   i.ChatHistory,
		Evaluation:    i.Evaluation,
		CreatedAt:     i.CreatedAt,
	}
	if i.Result != nil {
		res.Result = &dto.SessionResultResponse{
			Score:           i.Result.Score,
			Feedback:        i.Result.Feedback,
			Strengths:       i.Result.Strengths,
			Improvements:    i.Result.Improvements,
			ResponseQuality: i.Result.ResponseQuality,
			TurnCount:       i.Result.TurnCount,
			DurationSeconds: i.Result.DurationSeconds,
		}
	}
	if i.RecordingURL != nil {
		res.RecordingURL = *i.RecordingURL
	}
	return res
}

func (s *interviewService) Schedule(ctx context.Context, recruiterId uuid.UUID, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error) {
	applicationId, err := uuid.Parse(req.ApplicationId)
	if err != nil {
		return nil, errors.New("invalid application id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	application, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: applicationId})
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, errors.New("application not found")
	}

	job, err := uow.JobRepository().FindOne(ctx, specification.ByID{ID: application.JobId})
	if err != nil {
		return nil, err
	}
	if job == nil || job.RecruiterId != recruiterId {
		return nil, errors.New("application does not belong to this recruiter")
	}

	existing, err := uow.InterviewRepository().FindOne(ctx, specification.ByApplicationID{ApplicationID: applicationId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("interview already scheduled for this application")
	}

	interview := &entity.Interview{
		Id:            uuid.New(),
		ApplicationId: applicationId,
		CandidateId:   application.CandidateId,
		Role:          job.InterviewRole,
		ScheduledAt:   req.ScheduledAt,
		Status:        entity.InterviewStatusScheduled,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.InterviewRepository().Create(ctx, interview); err != nil {
		return nil, err
	}
	if err := uow.ApplicationRepository().UpdateStatus(ctx, applicationId, string(entity.ApplicationStatusReviewing)); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	candidate, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: application.CandidateId})
	if err == nil && candidate != nil {
		interviewURL := fmt.Sprintf("%s/interview/%s", s.frontendURL, interview.Id)
		go func() {
			if emailErr := s.emailService.SendInterviewInvite(candidate.Email, job.Title, interview.ScheduledAt, interviewURL); emailErr != nil {
				fmt.Printf("Error sending interview invite: %v\n", emailErr)
			}
		}()
	}

	if s.eventPublisher != nil {
		scheduledAt := time.Now()
		if interview.ScheduledAt != nil {
			scheduledAt = *interview.ScheduledAt
		}
		evt := events.NewInterviewScheduledEvent(interview.Id.String(), applicationId.String(), application.CandidateId.String(), scheduledAt)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish INTERVIEW_SCHEDULED event: %v\n", err)
		}
	}

	res := interviewResponseOf(interview)
	return &res, nil
}

func (s *interviewService) ListByCandidate(ctx context.Context, candidateId uuid.UUID) ([]dto.InterviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interviews, err := uow.InterviewRepository().FindAll(ctx,
		specification.ByCandidateID{CandidateID: candidateId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.InterviewResponse, len(interviews))
	for i, it := range interviews {
		res[i] = interviewResponseOf(it)
	}
	return res, nil
}

func (s *interviewService) GetById(ctx context.Context, id uuid.UUID) (*dto.InterviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}

	res := interviewResponseOf(interview)
	return &res, nil
}

func (s *interviewService) StartSession(ctx context.Context, interviewId, candidateId uuid.UUID) (*dto.StartSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByID{ID: interviewId})
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}
	if interview.CandidateId != candidateId {
		return nil, ErrInterviewForbidden
	}
	if interview.Status == entity.InterviewStatusCompleted || interview.Status == entity.InterviewStatusEvaluated {
		return nil, session.ErrAlreadyEnded
	}

	if _, active := s.sessions.Get(interviewId.String()); active {
		return nil, errors.New("session already started")
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	machine := session.NewMachine(questionbank.New(rnd), evaluate.New(rnd), rnd)

	firstQuestion, err := machine.Start(interview.Role)
	if err != nil {
		return nil, err
	}

	s.sessions.Save(interviewId.String(), machine)

	now := time.Now()
	interview.StartedAt = &now
	interview.Status = entity.InterviewStatusInProgress
	interview.UpdatedAt = now
	if err := uow.InterviewRepository().Update(ctx, interview); err != nil {
		s.sessions.Delete(interviewId.String())
		return nil, err
	}

	return &dto.StartSessionResponse{
		InterviewId:   interviewId,
		Role:          interview.Role,
		Question:      firstQuestion,
		QuestionCount: len(machine.Questions()),
	}, nil
}

func (s *interviewService) AdvanceSession(ctx context.Context, interviewId uuid.UUID, req *dto.AdvanceSessionRequest) (*dto.AdvanceSessionResponse, error) {
	machine, found := s.sessions.Get(interviewId.String())
	if !found {
		return nil, session.ErrNoActiveSession
	}

	next, err := machine.Advance(req.Response)
	if err != nil {
		return nil, err
	}

	res := &dto.AdvanceSessionResponse{
		Type:   string(next.Type),
		Text:   next.Text,
		IsLast: next.IsLast,
	}

	turns := machine.Turns()
	if len(turns) > 0 {
		last := turns[len(turns)-1]
		res.Score = last.Evaluation.Score
		res.Feedback = last.Evaluation.Feedback
	}

	if next.Type == session.NextEnd {
		res.Result = sessionResultOf(next.Result)
		if err := s.finalizeSession(ctx, interviewId, machine, next.Result); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (s *interviewService) EndSession(ctx context.Context, interviewId uuid.UUID) (*dto.SessionResultResponse, error) {
	machine, found := s.sessions.Get(interviewId.String())
	if !found {
		return nil, session.ErrNoActiveSession
	}

	result, err := machine.End()
	if err != nil {
		return nil, err
	}

	if err := s.finalizeSession(ctx, interviewId, machine, result); err != nil {
		return nil, err
	}

	return sessionResultOf(result), nil
}

// finalizeSession persists the transcript and result, flips the interview to
// completed, and hands the evaluation work to the async consumer.
func (s *interviewService) finalizeSession(ctx context.Context, interviewId uuid.UUID, machine *session.Machine, result *session.FinalResult) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	transcript := machine.Transcript()
	history := make([]entity.ChatMessage, len(transcript))
	for i, msg := range transcript {
		history[i] = entity.ChatMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.InterviewRepository()
	if err := repo.SaveChatHistory(ctx, interviewId, history); err != nil {
		return err
	}
	if result != nil {
		if err := repo.SaveResult(ctx, interviewId, &entity.InterviewResult{
			Score:           result.NormalizedScore,
			Feedback:        result.FeedbackSummary,
			Strengths:       result.Strengths,
			Improvements:    result.Improvements,
			ResponseQuality: result.ResponseQuality,
			TurnCount:       result.TurnCount,
			DurationSeconds: result.DurationSeconds,
		}); err != nil {
			return err
		}
	}
	if err := repo.UpdateStatus(ctx, interviewId, string(entity.InterviewStatusCompleted)); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.sessions.Delete(interviewId.String())

	if s.publisherService != nil {
		payload, err := json.Marshal(dto.EvaluateInterviewMessage{InterviewId: interviewId})
		if err != nil {
			return err
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			fmt.Printf("[WARN] Failed to queue interview evaluation: %v\n", err)
		}
	}

	return nil
}

// Recording lifecycle. Chunks arrive over the interview stream and are
// buffered until the client stops the capture.

func (s *interviewService) StartRecording(ctx context.Context, interviewId uuid.UUID, mimeType string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByID{ID: interviewId})
	if err != nil {
		return err
	}
	if interview == nil {
		return ErrInterviewNotFound
	}

	recorder := media.NewRecorder()
	if err := recorder.Start(mimeType); err != nil {
		return err
	}
	s.recorders.Save(interviewId.String(), recorder)
	return nil
}

func (s *interviewService) AppendRecordingChunk(ctx context.Context, interviewId uuid.UUID, chunk []byte) error {
	recorder, found := s.recorders.Get(interviewId.String())
	if !found {
		return errors.New("no active recording")
	}
	recorder.Append(chunk)
	return nil
}

func (s *interviewService) StopRecording(ctx context.Context, interviewId uuid.UUID) error {
	recorder, found := s.recorders.Get(interviewId.String())
	if !found {
		return errors.New("no active recording")
	}

	artifact := recorder.Stop()
	s.recorders.Delete(interviewId.String())

	if artifact.SizeBytes == 0 {
		return nil
	}

	if err := os.MkdirAll(s.recordingDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(s.recordingDir, fmt.Sprintf("%s.webm", interviewId))
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InterviewRepository().SaveRecordingURL(ctx, interviewId, path)
}
