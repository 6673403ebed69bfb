package handler

import (
	"encoding/json"
	"net/http"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/afr117/My-personal-website/internal/service"
	"github.com/afr117/My-personal-website/pkg/auth"
)

// ProjectHandler はプロジェクトカタログの HTTP ハンドラ
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List は GET /api/projects を処理する
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(projects))
}

// Featured は GET /api/projects/featured を処理する
func (h *ProjectHandler) Featured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListFeatured(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch featured projects")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(projects))
}

// Get は GET /api/projects/{id} を処理する
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create は POST /api/projects を処理する（管理者のみ）
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !auth.PrincipalFromContext(r.Context()).Authenticated {
		writeServiceError(w, service.ErrUnauthorized)
		return
	}

	var in model.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	project, err := h.projectService.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update は PATCH /api/projects/{id} を処理する（管理者のみ）。
// PATCH だが id 以外の全フィールドを置き換える。
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !auth.PrincipalFromContext(r.Context()).Authenticated {
		writeServiceError(w, service.ErrUnauthorized)
		return
	}

	var in model.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	project, err := h.projectService.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete は DELETE /api/projects/{id} を処理する（管理者のみ）
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !auth.PrincipalFromContext(r.Context()).Authenticated {
		writeServiceError(w, service.ErrUnauthorized)
		return
	}

	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// nonNil は空一覧を null ではなく [] として返すためのもの
func nonNil(projects []*model.Project) []*model.Project {
	if projects == nil {
		return []*model.Project{}
	}
	return projects
}
