package model

import "time"

// Session はサーバー側で保持する管理者セッション
type Session struct {
	ID        string    `json:"id"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired は now 時点でセッションが失効しているかを返す
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
