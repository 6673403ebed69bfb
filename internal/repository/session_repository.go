package repository

import (
	"context"
	"time"

	"github.com/afr117/My-personal-website/internal/model"
)

// SessionRepository handles persistence for admin sessions.
// FindByID returns ErrNotFound for unknown ids; DeleteByID is idempotent.
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	FindByID(ctx context.Context, id string) (*model.Session, error)
	DeleteByID(ctx context.Context, id string) error
	// DeleteExpired removes sessions whose ExpiresAt is not after now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
