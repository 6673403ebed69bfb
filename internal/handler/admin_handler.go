package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/afr117/My-personal-website/pkg/auth"
)

// AdminGate は AdminHandler が使う認可ゲート（service.AdminAuthService が実装）
type AdminGate interface {
	auth.Authenticator
	Login(ctx context.Context, password string) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// AdminHandler は管理者ログイン・ログアウトの HTTP ハンドラ
type AdminHandler struct {
	gate          AdminGate
	sessionSecret []byte
	secureCookie  bool
}

// NewAdminHandler は AdminHandler を生成する
func NewAdminHandler(gate AdminGate, sessionSecret []byte, secureCookie bool) *AdminHandler {
	return &AdminHandler{gate: gate, sessionSecret: sessionSecret, secureCookie: secureCookie}
}

// Login は POST /api/admin/login を処理する
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	session, err := h.gate.Login(r.Context(), req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	auth.SetSessionCookie(w, session.ID, h.sessionSecret, h.secureCookie)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout は POST /api/admin/logout を処理する。セッションが無くても成功を返す。
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := auth.SessionIDFromRequest(r, h.sessionSecret)
	if err := h.gate.Logout(r.Context(), sessionID); err != nil {
		slog.Error("logout failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to logout")
		return
	}

	auth.ClearSessionCookie(w, h.secureCookie)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Session は GET /api/admin/session を処理する（管理画面のログイン状態確認用）
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	p := h.gate.Authenticate(r.Context(), auth.SessionIDFromRequest(r, h.sessionSecret))
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": p.Authenticated})
}
