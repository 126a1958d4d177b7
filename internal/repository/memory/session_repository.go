package memory

import (
	"time"

	"careerbridge-be/pkg/interview/session"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps live interview state machines in process memory,
// keyed by interview id. Sessions that receive no traffic for an hour are
// evicted.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(interviewID string, m *session.Machine) {
	r.cache.Set(interviewID, m, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(interviewID string) (*session.Machine, bool) {
	if x, found := r.cache.Get(interviewID); found {
		return x.(*session.Machine), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(interviewID string) {
	r.cache.Delete(interviewID)
}
