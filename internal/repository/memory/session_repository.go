package memory

import (
	"time"

	"moodmate-be/pkg/session"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds the live session states in process memory. A state
// that idles past the TTL is purged; the client simply starts a fresh session.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(state *session.State) {
	r.cache.Set(state.ID, state, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*session.State, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*session.State), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
