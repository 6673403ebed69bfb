package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/afr117/My-personal-website/internal/repository"
	"github.com/afr117/My-personal-website/internal/service"
	"github.com/afr117/My-personal-website/internal/storage"
)

type testServer struct {
	handler  http.Handler
	projects *repository.MemProjectRepository
	assets   string
	uploads  string
}

func newTestServer(t *testing.T, adminPassword string) *testServer {
	t.Helper()
	assets := t.TempDir()
	// アップロード先は assets の外に置き、URL プレフィックスで直接マウントされることを確かめる
	uploads := t.TempDir()
	projects := repository.NewMemProjectRepository(repository.DefaultProjects()...)
	gate := service.NewAdminAuthService(adminPassword, service.NewSessionService(repository.NewMemSessionRepository()))
	images := service.NewImageService(storage.NewLocalStorage(uploads, "/attached_assets/uploads"))

	h := NewRouter(RouterConfig{
		Base:          New(repository.NopDB{}, "http://localhost:5173"),
		Admin:         NewAdminHandler(gate, testSecret, false),
		Projects:      NewProjectHandler(service.NewProjectService(projects)),
		Upload:        NewUploadHandler(images),
		Gate:          gate,
		SessionSecret: testSecret,
		AssetsDir:     assets,
		AssetsPrefix:  "/attached_assets",
		UploadsDir:    uploads,
		UploadsPrefix: "/attached_assets/uploads",
	})
	return &testServer{handler: h, projects: projects, assets: assets, uploads: uploads}
}

func (s *testServer) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, password string) *http.Cookie {
	t.Helper()
	rec := s.do("POST", "/api/admin/login", `{"password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
	c := findCookie(rec)
	if c == nil {
		t.Fatal("login: no session cookie")
	}
	return c
}

func (s *testServer) count(t *testing.T) int {
	t.Helper()
	all, err := s.projects.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	return len(all)
}

func TestRouter_PublicReads(t *testing.T) {
	s := newTestServer(t, "secret")

	rec := s.do("GET", "/api/projects", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var all []*model.Project
	_ = json.NewDecoder(rec.Body).Decode(&all)
	if len(all) != 6 {
		t.Errorf("expected 6 seeded projects, got %d", len(all))
	}

	rec = s.do("GET", "/api/projects/featured", "")
	var featured []*model.Project
	_ = json.NewDecoder(rec.Body).Decode(&featured)
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("non-featured project %s in featured list", p.ID)
		}
	}
	if len(featured) != 3 {
		t.Errorf("expected 3 featured projects, got %d", len(featured))
	}

	if rec := s.do("GET", "/api/projects/1", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200 for seeded project, got %d", rec.Code)
	}
	if rec := s.do("GET", "/api/projects/999", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown project, got %d", rec.Code)
	}
}

func TestRouter_AnonymousMutationsRejected(t *testing.T) {
	s := newTestServer(t, "secret")
	before := s.count(t)

	tests := []struct {
		method, path, body string
	}{
		{"POST", "/api/projects", `{"title":"X","description":"Y","image":"/i.png","technologies":"Go"}`},
		{"PATCH", "/api/projects/1", `{"title":"X","description":"Y","image":"/i.png","technologies":"Go"}`},
		{"DELETE", "/api/projects/1", ""},
		{"POST", "/api/upload", ""},
	}
	for _, tt := range tests {
		rec := s.do(tt.method, tt.path, tt.body)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tt.method, tt.path, rec.Code)
		}
	}

	if after := s.count(t); after != before {
		t.Errorf("store changed: %d -> %d", before, after)
	}
	p, _ := s.projects.GetByID(context.Background(), "1")
	if p.Title == "X" {
		t.Error("anonymous PATCH modified the project")
	}
}

func TestRouter_CreateFlow(t *testing.T) {
	s := newTestServer(t, "secret")
	cookie := s.login(t, "secret")

	if rec := s.do("GET", "/api/admin/session", "", cookie); !bytes.Contains(rec.Body.Bytes(), []byte(`"authenticated":true`)) {
		t.Errorf("expected authenticated session, got %s", rec.Body.String())
	}

	rec := s.do("POST", "/api/projects", `{"title":"X","description":"Y","image":"/img.png","technologies":"Go, Rust"}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id, _ := raw["id"].(string)
	if id == "" {
		t.Fatal("expected generated id")
	}
	techs, _ := raw["technologies"].([]any)
	if len(techs) != 2 || techs[0] != "Go" || techs[1] != "Rust" {
		t.Errorf("expected [Go Rust], got %v", raw["technologies"])
	}
	if raw["featured"] != false {
		t.Errorf("expected featured=false, got %v", raw["featured"])
	}
	if v, ok := raw["githubUrl"]; !ok || v != nil {
		t.Errorf("expected githubUrl null, got %v (present=%v)", v, ok)
	}

	if rec := s.do("GET", "/api/projects/"+id, ""); rec.Code != http.StatusOK {
		t.Errorf("expected created project to be readable, got %d", rec.Code)
	}
}

func TestRouter_UpdateDeleteFlow(t *testing.T) {
	s := newTestServer(t, "secret")
	cookie := s.login(t, "secret")

	rec := s.do("PATCH", "/api/projects/2", `{"title":"New","description":"D","image":"/i.png","technologies":["Go"],"featured":"true","githubUrl":"https://github.com/x/y"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	p, err := s.projects.GetByID(context.Background(), "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Title != "New" || !p.Featured || p.GithubURL == nil || *p.GithubURL != "https://github.com/x/y" {
		t.Errorf("unexpected updated project %+v", p)
	}

	if rec := s.do("PATCH", "/api/projects/2", `{"title":""}`, cookie); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid update, got %d", rec.Code)
	}
	if rec := s.do("PATCH", "/api/projects/999", `{"title":"A","description":"B","image":"/i.png","technologies":"Go"}`, cookie); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}

	before := s.count(t)
	if rec := s.do("DELETE", "/api/projects/2", "", cookie); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if after := s.count(t); after != before-1 {
		t.Errorf("expected %d projects, got %d", before-1, after)
	}
	if rec := s.do("DELETE", "/api/projects/2", "", cookie); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestRouter_LogoutRevokesSession(t *testing.T) {
	s := newTestServer(t, "secret")
	cookie := s.login(t, "secret")

	if rec := s.do("POST", "/api/admin/logout", "", cookie); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// 同じクッキーを再送しても、サーバー側のセッションは消えている
	if rec := s.do("DELETE", "/api/projects/1", "", cookie); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", rec.Code)
	}
	// ログアウトは冪等
	if rec := s.do("POST", "/api/admin/logout", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200 for logout without session, got %d", rec.Code)
	}
}

func TestRouter_LoginFailures(t *testing.T) {
	s := newTestServer(t, "secret")
	if rec := s.do("POST", "/api/admin/login", `{"password":"SECRET"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for case-mismatched password, got %d", rec.Code)
	}

	unset := newTestServer(t, "")
	if rec := unset.do("POST", "/api/admin/login", `{"password":""}`); rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 when admin password unset, got %d", rec.Code)
	}
}

func TestRouter_ServesAssets(t *testing.T) {
	s := newTestServer(t, "secret")
	if err := os.WriteFile(filepath.Join(s.assets, "logo.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := s.do("GET", "/attached_assets/logo.txt", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "hi" {
		t.Errorf("expected asset, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_DirectoriesAreNotListed(t *testing.T) {
	s := newTestServer(t, "secret")
	if err := os.WriteFile(filepath.Join(s.uploads, "a.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(s.assets, "img"), 0o755); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{"/attached_assets/uploads/", "/attached_assets/", "/attached_assets/img/"} {
		rec := s.do("GET", p, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", p, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "a.png") {
			t.Errorf("GET %s: listing leaked file names: %s", p, rec.Body.String())
		}
	}
}

func TestRouter_UploadedImageIsServed(t *testing.T) {
	s := newTestServer(t, "secret")
	cookie := s.login(t, "secret")

	body, ct := multipartImage(t, "shot.png", "image/png", 1024)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	got := s.do("GET", resp.ImageURL, "")
	if got.Code != http.StatusOK || got.Body.Len() != 1024 {
		t.Errorf("GET %s: expected 1024 bytes, got %d (%d bytes)", resp.ImageURL, got.Code, got.Body.Len())
	}
}
