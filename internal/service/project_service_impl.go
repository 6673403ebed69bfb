package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/afr117/My-personal-website/internal/repository"
)

// ProjectServiceImpl は ProjectService の実装
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService は ProjectServiceImpl を生成する（DI: ProjectRepository を注入）
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// List はプロジェクト一覧を挿入順で取得する
func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx)
}

// ListFeatured は featured のプロジェクト一覧を取得する
func (s *ProjectServiceImpl) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.ListFeatured(ctx)
}

// GetByID は ID でプロジェクトを取得する
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	return p, mapNotFound(err)
}

// Create は検証後にプロジェクトを作成する。検証に失敗したペイロードはリポジトリに届かない。
func (s *ProjectServiceImpl) Create(ctx context.Context, in model.ProjectInput) (*model.Project, error) {
	project, err := ValidateProject(in)
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	slog.Info("project created", "project_id", project.ID)
	return project, nil
}

// Update は id 以外の全フィールドを置き換える
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, in model.ProjectInput) (*model.Project, error) {
	project, err := ValidateProject(in)
	if err != nil {
		return nil, err
	}
	project.ID = id
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, mapNotFound(err)
	}
	slog.Info("project updated", "project_id", id)
	return project, nil
}

// Delete はプロジェクトを削除する
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	slog.Info("project deleted", "project_id", id)
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProjectNotFound
	}
	return err
}
