package service

import (
	"context"

	"github.com/afr117/My-personal-website/internal/model"
)

// ProjectService はプロジェクトカタログのビジネスロジックのインターフェース
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	ListFeatured(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, in model.ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id string, in model.ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}
