package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

// Authenticator resolves a session id into a principal.
// service.AdminAuthService implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) Principal
}

// RequireAdmin は管理者セッション必須ミドルウェア。
// クッキーの署名を検証した上でサーバー側のセッションを引き、Principal を context にセットする。
// 失敗してもセッション自体は無効化しない。
func RequireAdmin(authenticator Authenticator, sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := authenticator.Authenticate(r.Context(), SessionIDFromRequest(r, sessionSecret))
			if !p.Authenticated {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized - admin access required"})
				return
			}

			ctx := WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
