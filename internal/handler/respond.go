package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/afr117/My-personal-website/internal/service"
)

// writeJSON writes JSON response with status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError sends an error message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError はサービス層のエラーをステータスコードに対応付けて返す。
// 400: 入力不正 / 401: 未認証 / 404: 存在しない id / 500: 設定不備・内部エラー
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	var uerr *service.UploadError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": verr.Error(), "fields": verr.Fields})
	case errors.As(err, &uerr):
		writeError(w, http.StatusBadRequest, uerr.Reason)
	case errors.Is(err, service.ErrProjectNotFound):
		writeError(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, service.ErrInvalidPassword):
		writeError(w, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized - admin access required")
	case errors.Is(err, service.ErrAdminNotConfigured):
		writeError(w, http.StatusInternalServerError, "Admin password not configured")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}
