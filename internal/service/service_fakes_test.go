package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"careerbridge-be/internal/entity"
	"careerbridge-be/internal/repository/contract"
	"careerbridge-be/internal/repository/specification"
	"careerbridge-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory fakes for the repository contracts. They interpret the
// specification structs the services actually pass instead of building SQL.

type fakeUserRepo struct {
	mu                 sync.Mutex
	users              map[uuid.UUID]*entity.User
	resetTokens        map[uuid.UUID]*entity.PasswordResetToken
	verificationTokens map[uuid.UUID]*entity.EmailVerificationToken
	refreshTokens      map[uuid.UUID]*entity.UserRefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:              map[uuid.UUID]*entity.User{},
		resetTokens:        map[uuid.UUID]*entity.PasswordResetToken{},
		verificationTokens: map[uuid.UUID]*entity.EmailVerificationToken{},
		refreshTokens:      map[uuid.UUID]*entity.UserRefreshToken{},
	}
}

func (r *fakeUserRepo) userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByRole:
			if string(u.Role) != s.Role {
				return false
			}
		case specification.ByStatus:
			if string(u.Status) != s.Status {
				return false
			}
		case specification.SearchUsers:
			if s.Query == "" {
				continue
			}
			q := strings.ToLower(s.Query)
			if !strings.Contains(strings.ToLower(u.FullName), q) &&
				!strings.Contains(strings.ToLower(u.Email), q) {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if r.userMatches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if r.userMatches(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, _ := r.FindAll(ctx, specs...)
	return int64(len(users)), nil
}

func (r *fakeUserRepo) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.resetTokens[token.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindPasswordResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.resetTokens {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByToken:
				if t.Token != s.Token {
					ok = false
				}
			case specification.UserOwnedBy:
				if t.UserId != s.UserID {
					ok = false
				}
			}
		}
		if ok {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) MarkTokenUsed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.resetTokens[id]; ok {
		t.Used = true
	}
	return nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.verificationTokens[token.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.verificationTokens {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByToken:
				if t.Token != s.Token {
					ok = false
				}
			case specification.UserOwnedBy:
				if t.UserId != s.UserID {
					ok = false
				}
			}
		}
		if ok {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.verificationTokens, id)
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.refreshTokens[token.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.refreshTokens {
		ok := true
		for _, spec := range specs {
			if s, is := spec.(specification.ByTokenHash); is && t.TokenHash != s.Hash {
				ok = false
			}
		}
		if ok {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.refreshTokens {
		if t.TokenHash == tokenHash {
			t.Revoked = true
		}
	}
	return nil
}

func (r *fakeUserRepo) ActivateUser(ctx context.Context, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userId]; ok {
		now := time.Now()
		u.Status = entity.UserStatusActive
		u.EmailVerified = true
		u.EmailVerifiedAt = &now
	}
	return nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Status = entity.UserStatus(status)
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userId]; ok {
		u.PasswordHash = &hash
	}
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]*entity.Job{}}
}

func (r *fakeJobRepo) jobMatches(j *entity.Job, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if j.Id != s.ID {
				return false
			}
		case specification.ByRecruiterID:
			if j.RecruiterId != s.RecruiterID {
				return false
			}
		case specification.ByStatus:
			if string(j.Status) != s.Status {
				return false
			}
		case specification.SearchJobs:
			q := strings.ToLower(s.Query)
			if !strings.Contains(strings.ToLower(j.Title), q) &&
				!strings.Contains(strings.ToLower(j.Location), q) {
				return false
			}
		case specification.FilterBy:
			val, _ := s.Value.(string)
			switch s.Field {
			case "location":
				if j.Location != val {
					return false
				}
			case "type":
				if string(j.Type) != val {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakeJobRepo) Create(ctx context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *job
	r.jobs[job.Id] = &cp
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *entity.Job) error {
	return r.Create(ctx, job)
}

func (r *fakeJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if r.jobMatches(j, specs) {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Job
	for _, j := range r.jobs {
		if r.jobMatches(j, specs) {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	jobs, _ := r.FindAll(ctx, specs...)
	return int64(len(jobs)), nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[uuid.UUID]*entity.Application
	details      []*entity.ApplicationDetail
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[uuid.UUID]*entity.Application{}}
}

func (r *fakeApplicationRepo) appMatches(a *entity.Application, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if a.Id != s.ID {
				return false
			}
		case specification.ByJobID:
			if a.JobId != s.JobID {
				return false
			}
		case specification.ByCandidateID:
			if a.CandidateId != s.CandidateID {
				return false
			}
		case specification.ByStatus:
			if string(a.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *entity.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.applications {
		if existing.JobId == application.JobId && existing.CandidateId == application.CandidateId {
			return contract.ErrDuplicateApplication
		}
	}
	cp := *application
	r.applications[application.Id] = &cp
	return nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *entity.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *application
	r.applications[application.Id] = &cp
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.applications, id)
	return nil
}

func (r *fakeApplicationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if r.appMatches(a, specs) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeApplicationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Application
	for _, a := range r.applications {
		if r.appMatches(a, specs) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	apps, _ := r.FindAll(ctx, specs...)
	return int64(len(apps)), nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.applications[id]; ok {
		a.Status = entity.ApplicationStatus(status)
	}
	return nil
}

func (r *fakeApplicationRepo) ListForRecruiter(ctx context.Context, recruiterId uuid.UUID, limit, offset int) ([]*entity.ApplicationDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.details, nil
}

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews map[uuid.UUID]*entity.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: map[uuid.UUID]*entity.Interview{}}
}

func (r *fakeInterviewRepo) interviewMatches(i *entity.Interview, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if i.Id != s.ID {
				return false
			}
		case specification.ByApplicationID:
			if i.ApplicationId != s.ApplicationID {
				return false
			}
		case specification.ByCandidateID:
			if i.CandidateId != s.CandidateID {
				return false
			}
		case specification.ByStatus:
			if string(i.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *fakeInterviewRepo) Create(ctx context.Context, interview *entity.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *interview
	r.interviews[interview.Id] = &cp
	return nil
}

func (r *fakeInterviewRepo) Update(ctx context.Context, interview *entity.Interview) error {
	return r.Create(ctx, interview)
}

func (r *fakeInterviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.interviews, id)
	return nil
}

func (r *fakeInterviewRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.interviews {
		if r.interviewMatches(i, specs) {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInterviewRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Interview
	for _, i := range r.interviews {
		if r.interviewMatches(i, specs) {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInterviewRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	interviews, _ := r.FindAll(ctx, specs...)
	return int64(len(interviews)), nil
}

func (r *fakeInterviewRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.interviews[id]; ok {
		i.Status = entity.InterviewStatus(status)
	}
	return nil
}

func (r *fakeInterviewRepo) SaveChatHistory(ctx context.Context, id uuid.UUID, history []entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.interviews[id]; ok {
		i.ChatHistory = history
	}
	return nil
}

func (r *fakeInterviewRepo) SaveResult(ctx context.Context, id uuid.UUID, result *entity.InterviewResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.interviews[id]; ok {
		i.Result = result
	}
	return nil
}

func (r *fakeInterviewRepo) SaveEvaluation(ctx context.Context, id uuid.UUID, evaluation *entity.InterviewEvaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.interviews[id]; ok {
		i.Evaluation = evaluation
	}
	return nil
}

func (r *fakeInterviewRepo) SaveRecordingURL(ctx context.Context, id uuid.UUID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.interviews[id]; ok {
		i.RecordingURL = &url
	}
	return nil
}

func (r *fakeInterviewRepo) get(id uuid.UUID) *entity.Interview {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.interviews[id]; ok {
		cp := *i
		return &cp
	}
	return nil
}

// fakeUow hands the same repositories to every caller. Begin/Commit/Rollback
// are no-ops since the fakes have no transaction semantics.

type fakeUow struct {
	users        *fakeUserRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	interviews   *fakeInterviewRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		users:        newFakeUserRepo(),
		jobs:         newFakeJobRepo(),
		applications: newFakeApplicationRepo(),
		interviews:   newFakeInterviewRepo(),
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeUow) JobRepository() contract.JobRepository                 { return u.jobs }
func (u *fakeUow) ApplicationRepository() contract.ApplicationRepository { return u.applications }
func (u *fakeUow) InterviewRepository() contract.InterviewRepository     { return u.interviews }

type fakeFactory struct {
	uow *fakeUow
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: newFakeUow()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// fakeEmailService records sends so tests can assert on them.

type fakeEmailService struct {
	mu      sync.Mutex
	otps    map[string]string
	resets  map[string]string
	invites []string
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{otps: map[string]string{}, resets: map[string]string{}}
}

func (f *fakeEmailService) SendOTP(toEmail, otp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otps[toEmail] = otp
	return nil
}

func (f *fakeEmailService) SendResetToken(toEmail, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets[toEmail] = token
	return nil
}

func (f *fakeEmailService) SendInterviewInvite(toEmail, jobTitle string, scheduledAt *time.Time, interviewURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invites = append(f.invites, toEmail)
	return nil
}

func (f *fakeEmailService) lastOTP(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.otps[email]
}

type fakePublisherService struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (f *fakePublisherService) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakePublisherService) published() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.payloads))
	copy(out, f.payloads)
	return out
}
