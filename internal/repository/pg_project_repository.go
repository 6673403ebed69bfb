package repository

import (
	"context"
	"errors"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, title, description, image, technologies, github_url, live_url, featured`

// PgProjectRepository は ProjectRepository の PostgreSQL 実装。
// 表示順は position（BIGSERIAL）で保持し、UPDATE では変更しない。
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

// List はプロジェクト一覧を挿入順で取得する
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY position ASC`)
}

// ListFeatured は featured = true のプロジェクトを挿入順で取得する
func (r *PgProjectRepository) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	return r.query(ctx, `SELECT `+projectColumns+` FROM projects WHERE featured ORDER BY position ASC`)
}

// GetByID は ID でプロジェクトを取得する
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create はプロジェクトを作成する
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projects (id, title, description, image, technologies, github_url, live_url, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, project.Title, project.Description, project.Image, project.Technologies,
		project.GithubURL, project.LiveURL, project.Featured,
	)
	if err != nil {
		return err
	}
	project.ID = id
	return nil
}

// Update はプロジェクトを置き換える。対象が存在しない場合は ErrNotFound を返す。
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, image = $3, technologies = $4,
		     github_url = $5, live_url = $6, featured = $7, updated_at = NOW()
		 WHERE id = $8`,
		project.Title, project.Description, project.Image, project.Technologies,
		project.GithubURL, project.LiveURL, project.Featured, project.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はプロジェクトを物理削除する。対象が存在しない場合は ErrNotFound を返す。
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgProjectRepository) query(ctx context.Context, sql string, args ...any) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Technologies, &p.GithubURL, &p.LiveURL, &p.Featured); err != nil {
		return nil, err
	}
	return &p, nil
}
