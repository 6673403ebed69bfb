package repository

import (
	"context"
	"sync"
	"time"

	"github.com/afr117/My-personal-website/internal/model"
)

type memSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

// NewMemSessionRepository returns an in-memory SessionRepository.
// Sessions do not survive a restart.
func NewMemSessionRepository() SessionRepository {
	return &memSessionRepository{sessions: make(map[string]model.Session)}
}

func (r *memSessionRepository) Create(_ context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessionRepository) FindByID(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memSessionRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memSessionRepository) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
