package handler

import (
	"net/http"

	"github.com/afr117/My-personal-website/pkg/auth"
)

// RouterConfig は NewRouter に渡すハンドラと設定
type RouterConfig struct {
	Base          *Handler
	Admin         *AdminHandler
	Projects      *ProjectHandler
	Upload        *UploadHandler
	Gate          auth.Authenticator
	SessionSecret []byte

	// AssetsDir が空でなければ AssetsPrefix 配下で静的ファイルとして配信する
	AssetsDir    string
	AssetsPrefix string

	// UploadsDir が空でなければ UploadsPrefix で直接配信する。
	// ローカル保存の画像 URL と同じプレフィックスにすること。
	UploadsDir    string
	UploadsPrefix string
}

// NewRouter はルーティングとミドルウェアを組み立てる
func NewRouter(cfg RouterConfig) http.Handler {
	requireAdmin := auth.RequireAdmin(cfg.Gate, cfg.SessionSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", cfg.Base.Health)

	// 管理者認証
	mux.HandleFunc("POST /api/admin/login", cfg.Admin.Login)
	mux.HandleFunc("POST /api/admin/logout", cfg.Admin.Logout)
	mux.HandleFunc("GET /api/admin/session", cfg.Admin.Session)

	// プロジェクト API（参照は認証不要）
	mux.HandleFunc("GET /api/projects", cfg.Projects.List)
	mux.HandleFunc("GET /api/projects/featured", cfg.Projects.Featured)
	mux.HandleFunc("GET /api/projects/{id}", cfg.Projects.Get)

	// 管理者セッション必須
	mux.Handle("POST /api/projects", requireAdmin(http.HandlerFunc(cfg.Projects.Create)))
	mux.Handle("PATCH /api/projects/{id}", requireAdmin(http.HandlerFunc(cfg.Projects.Update)))
	mux.Handle("DELETE /api/projects/{id}", requireAdmin(http.HandlerFunc(cfg.Projects.Delete)))
	mux.Handle("POST /api/upload", requireAdmin(http.HandlerFunc(cfg.Upload.Upload)))

	// 同じプレフィックスを二重登録すると ServeMux が panic するので uploads を優先する
	mounted := map[string]bool{}
	if cfg.UploadsDir != "" {
		prefix := mountPrefix(cfg.UploadsPrefix)
		mux.Handle("GET "+prefix, staticHandler(prefix, cfg.UploadsDir))
		mounted[prefix] = true
	}
	if cfg.AssetsDir != "" {
		if prefix := mountPrefix(cfg.AssetsPrefix); !mounted[prefix] {
			mux.Handle("GET "+prefix, staticHandler(prefix, cfg.AssetsDir))
		}
	}

	return RequestLogger(SecurityHeaders(cfg.Base.CORS(mux)))
}
