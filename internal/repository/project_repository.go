package repository

import (
	"context"

	"github.com/afr117/My-personal-website/internal/model"
)

// ProjectRepository はプロジェクトカタログ永続化のインターフェース。
// List / ListFeatured は挿入順（更新しても位置は変わらない）で返す。
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	ListFeatured(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	// Create は新しい ID を採番して末尾に追加し、project.ID にセットする
	Create(ctx context.Context, project *model.Project) error
	// Update は id 以外の全フィールドを置き換える。存在しない場合は ErrNotFound
	Update(ctx context.Context, project *model.Project) error
	// Delete は存在しない場合 ErrNotFound を返す
	Delete(ctx context.Context, id string) error
}
