package repository

import (
	"context"
	"sync"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/google/uuid"
)

// MemProjectRepository は ProjectRepository のインメモリ実装。
// プロセス再起動で内容はリセットされる。
type MemProjectRepository struct {
	mu       sync.RWMutex
	projects []*model.Project
	issued   map[string]struct{} // 削除済みを含む採番済み ID。再利用しない
	newID    func() string
}

var _ ProjectRepository = (*MemProjectRepository)(nil)

// NewMemProjectRepository は seed を初期内容とする MemProjectRepository を生成する
func NewMemProjectRepository(seed ...*model.Project) *MemProjectRepository {
	r := &MemProjectRepository{
		issued: make(map[string]struct{}),
		newID:  uuid.NewString,
	}
	for _, p := range seed {
		r.projects = append(r.projects, p.Clone())
		r.issued[p.ID] = struct{}{}
	}
	return r
}

// List は全プロジェクトを挿入順で返す
func (r *MemProjectRepository) List(_ context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p.Clone())
	}
	return out, nil
}

// ListFeatured は featured のプロジェクトだけを相対順を保って返す
func (r *MemProjectRepository) ListFeatured(_ context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Project, 0)
	for _, p := range r.projects {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// GetByID は ID でプロジェクトを取得する
func (r *MemProjectRepository) GetByID(_ context.Context, id string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.projects[i].Clone(), nil
	}
	return nil, ErrNotFound
}

// Create は ID を採番して末尾に追加する
func (r *MemProjectRepository) Create(_ context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for _, used := r.issued[id]; used; _, used = r.issued[id] {
		id = r.newID()
	}
	r.issued[id] = struct{}{}
	project.ID = id
	r.projects = append(r.projects, project.Clone())
	return nil
}

// Update は位置を保ったまま id 以外を置き換える
func (r *MemProjectRepository) Update(_ context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(project.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.projects[i] = project.Clone()
	return nil
}

// Delete は残りの順序を保ったまま削除する
func (r *MemProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

// indexOf must be called with r.mu held.
func (r *MemProjectRepository) indexOf(id string) int {
	for i, p := range r.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
