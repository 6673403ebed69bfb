package service

import (
	"context"
	"log/slog"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/afr117/My-personal-website/pkg/auth"
)

// AdminAuthService は単一の共有管理者パスワードによる認可ゲート。
// セッションの状態遷移: Anonymous → (Login) → Authenticated → (Logout / 失効) → Anonymous
type AdminAuthService struct {
	adminPassword string
	sessions      *SessionService
}

var _ auth.Authenticator = (*AdminAuthService)(nil)

// NewAdminAuthService は AdminAuthService を生成する。
// adminPassword が空の場合、Login は常に ErrAdminNotConfigured を返す。
func NewAdminAuthService(adminPassword string, sessions *SessionService) *AdminAuthService {
	return &AdminAuthService{adminPassword: adminPassword, sessions: sessions}
}

// Login は候補パスワードを設定値と完全一致（大文字小文字を区別）で比較し、
// 一致すれば管理者セッションを作成して返す。
// TODO: compare with subtle.ConstantTimeCompare once login throttling is in place.
func (s *AdminAuthService) Login(ctx context.Context, candidate string) (*model.Session, error) {
	if s.adminPassword == "" {
		slog.Warn("admin login attempted but ADMIN_PASSWORD is not configured")
		return nil, ErrAdminNotConfigured
	}
	if candidate != s.adminPassword {
		slog.Warn("admin login failed")
		return nil, ErrInvalidPassword
	}
	session, err := s.sessions.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("admin login succeeded", "session", shortID(session.ID))
	return session, nil
}

// Logout はセッションを破棄する。冪等。
func (s *AdminAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}

// Authenticate はセッション ID を明示的に引いて Principal を返す
func (s *AdminAuthService) Authenticate(ctx context.Context, sessionID string) auth.Principal {
	session, err := s.sessions.ValidateSession(ctx, sessionID)
	if err != nil {
		return auth.Anonymous
	}
	return auth.Authenticated(session.ID)
}

// RequireAuthenticated は未認証なら ErrUnauthorized を返す。副作用はない。
func (s *AdminAuthService) RequireAuthenticated(ctx context.Context, sessionID string) (auth.Principal, error) {
	p := s.Authenticate(ctx, sessionID)
	if !p.Authenticated {
		return p, ErrUnauthorized
	}
	return p, nil
}
