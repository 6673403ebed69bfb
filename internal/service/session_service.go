package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/afr117/My-personal-website/internal/repository"
	"github.com/afr117/My-personal-website/pkg/auth"
)

var (
	errSessionNotFound = errors.New("invalid_session")
	errSessionExpired  = errors.New("session_expired")
)

// SessionService manages server-side admin sessions.
type SessionService struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo, now: time.Now}
}

// CreateSession generates a new opaque id, stores an admin session valid for
// auth.SessionDuration and returns it.
func (s *SessionService) CreateSession(ctx context.Context) (*model.Session, error) {
	id, err := auth.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	now := s.now()
	// 失効済みセッションは参照されない限り残るので、発行のたびに掃除する。失敗してもログインは続ける
	if n, err := s.repo.DeleteExpired(ctx, now); err != nil {
		slog.Warn("expired session sweep failed", "error", err)
	} else if n > 0 {
		slog.Info("expired sessions removed", "count", n)
	}
	session := &model.Session{
		ID:        id,
		IsAdmin:   true,
		CreatedAt: now,
		ExpiresAt: now.Add(auth.SessionDuration),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	slog.Info("session created", "session", shortID(id), "expires_at", session.ExpiresAt)
	return session, nil
}

// ValidateSession returns the stored admin session for id.
// Expired sessions are deleted and reported as invalid.
func (s *SessionService) ValidateSession(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, errSessionNotFound
	}
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("session lookup failed", "error", err)
		}
		return nil, errSessionNotFound
	}
	if session.Expired(s.now()) {
		slog.Info("session expired", "session", shortID(id))
		_ = s.repo.DeleteByID(ctx, id)
		return nil, errSessionExpired
	}
	if !session.IsAdmin {
		return nil, errSessionNotFound
	}
	return session, nil
}

// DeleteSession removes a session (logout). Unknown ids are not an error.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.repo.DeleteByID(ctx, id)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
