package memory

import (
	"time"

	"careerbridge-be/pkg/media"

	"github.com/patrickmn/go-cache"
)

// RecorderRepository holds the in-flight media recorders for interviews whose
// stream is still open. Abandoned streams are evicted after two hours.
type RecorderRepository struct {
	cache *cache.Cache
}

func NewRecorderRepository() *RecorderRepository {
	c := cache.New(2*time.Hour, 15*time.Minute)
	return &RecorderRepository{
		cache: c,
	}
}

func (r *RecorderRepository) Save(interviewID string, rec *media.Recorder) {
	r.cache.Set(interviewID, rec, cache.DefaultExpiration)
}

func (r *RecorderRepository) Get(interviewID string) (*media.Recorder, bool) {
	if x, found := r.cache.Get(interviewID); found {
		return x.(*media.Recorder), true
	}
	return nil, false
}

func (r *RecorderRepository) Delete(interviewID string) {
	r.cache.Delete(interviewID)
}
