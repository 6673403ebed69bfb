package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/afr117/My-personal-website/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(title string, featured bool) *model.Project {
	return &model.Project{
		Title:        title,
		Description:  title + " description",
		Image:        "/img/" + title + ".png",
		Technologies: []string{"Go"},
		Featured:     featured,
	}
}

func titles(ps []*model.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestMemProjectRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()

	a := newProject("A", false)
	b := newProject("B", true)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles(list))
	assert.Equal(t, a.ID, list[0].ID)
}

func TestMemProjectRepository_ListEmptyIsNotNil(t *testing.T) {
	repo := NewMemProjectRepository()

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	featured, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, featured)
}

func TestMemProjectRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()
	p := newProject("A", false)
	require.NoError(t, repo.Create(ctx, p))

	// 呼び出し元の変更が内部状態に漏れないこと
	p.Title = "mutated"
	list, _ := repo.List(ctx)
	list[0].Technologies[0] = "mutated"

	again, _ := repo.List(ctx)
	assert.Equal(t, "A", again[0].Title)
	assert.Equal(t, []string{"Go"}, again[0].Technologies)
}

func TestMemProjectRepository_ListFeaturedPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()
	for i, featured := range []bool{true, false, true, false, true} {
		require.NoError(t, repo.Create(ctx, newProject(fmt.Sprintf("P%d", i), featured)))
	}

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"P0", "P2", "P4"}, titles(featured))
}

func TestMemProjectRepository_UpdatePreservesIDAndPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()
	a, b, c := newProject("A", false), newProject("B", false), newProject("C", false)
	for _, p := range []*model.Project{a, b, c} {
		require.NoError(t, repo.Create(ctx, p))
	}

	updated := newProject("B2", true)
	updated.ID = b.ID
	require.NoError(t, repo.Update(ctx, updated))

	list, _ := repo.List(ctx)
	assert.Equal(t, []string{"A", "B2", "C"}, titles(list))
	assert.Equal(t, b.ID, list[1].ID)
	assert.True(t, list[1].Featured)

	featured, _ := repo.ListFeatured(ctx)
	assert.Equal(t, []string{"B2"}, titles(featured))
}

func TestMemProjectRepository_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()
	require.NoError(t, repo.Create(ctx, newProject("A", false)))

	p := newProject("X", false)
	p.ID = "missing"
	err := repo.Update(ctx, p)
	assert.ErrorIs(t, err, ErrNotFound)

	list, _ := repo.List(ctx)
	assert.Equal(t, []string{"A"}, titles(list))
}

func TestMemProjectRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()
	a, b, c := newProject("A", true), newProject("B", true), newProject("C", true)
	for _, p := range []*model.Project{a, b, c} {
		require.NoError(t, repo.Create(ctx, p))
	}

	require.NoError(t, repo.Delete(ctx, b.ID))
	list, _ := repo.List(ctx)
	assert.Equal(t, []string{"A", "C"}, titles(list))

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), ErrNotFound)
	list, _ = repo.List(ctx)
	assert.Len(t, list, 2)

	_, err := repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemProjectRepository_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()
	ids := []string{"dup", "dup", "fresh"}
	repo.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first := newProject("A", false)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := newProject("B", false)
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "dup", first.ID)
	assert.Equal(t, "fresh", second.ID)
}

func TestMemProjectRepository_Seed(t *testing.T) {
	repo := NewMemProjectRepository(DefaultProjects()...)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 6)

	featured, err := repo.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 3)
	assert.Nil(t, featured[2].LiveURL)
}

func TestMemProjectRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, newProject(fmt.Sprintf("P%d", i), i%2 == 0))
		}(i)
	}
	wg.Wait()

	list, _ := repo.List(ctx)
	assert.Len(t, list, 50)
	seen := make(map[string]bool)
	for _, p := range list {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemProjectRepository()

	n, err := SeedIfEmpty(ctx, repo, DefaultProjects())
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	// 2回目は何もしない
	n, err = SeedIfEmpty(ctx, repo, DefaultProjects())
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}
