package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blogposts/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogQuery(term, sortBy, dir string, page, size int) models.BlogQuery {
	return models.BlogQuery{
		ListQuery: models.ListQuery{
			SortBy:        sortBy,
			SortDirection: dir,
			PageNumber:    page,
			PageSize:      size,
		}.WithDefaults(),
		SearchNameTerm: term,
	}
}

func TestBlogRepository(t *testing.T) {
	store := setupTestStore(t)
	repo := store.Blogs()
	ctx := context.Background()

	t.Run("create and get blog", func(t *testing.T) {
		blog := seedBlog(t, repo, "create", models.Now())
		assert.NotEmpty(t, blog.ID)

		retrieved, err := repo.GetByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, blog.Name, retrieved.Name)
		assert.True(t, blog.CreatedAt.Equal(retrieved.CreatedAt))
		assert.False(t, retrieved.IsMembership)
	})

	t.Run("get missing blog", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update keeps immutable fields", func(t *testing.T) {
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		blog := seedBlog(t, repo, "orig", created)

		err := repo.Update(ctx, &models.Blog{
			ID:           blog.ID,
			Name:         "renamed",
			Description:  "new description",
			WebsiteURL:   "https://renamed.io",
			IsMembership: true,
		})
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, "new description", updated.Description)
		assert.Equal(t, "https://renamed.io", updated.WebsiteURL)
		assert.True(t, created.Equal(updated.CreatedAt))
		assert.False(t, updated.IsMembership)
	})

	t.Run("update missing blog does not insert", func(t *testing.T) {
		err := repo.Update(ctx, &models.Blog{ID: "ghost", Name: "ghost"})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete blog", func(t *testing.T) {
		blog := seedBlog(t, repo, "doomed", models.Now())

		require.NoError(t, repo.Delete(ctx, blog.ID))
		_, err := repo.GetByID(ctx, blog.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, blog.ID), ErrNotFound)
	})
}

func TestBlogRepositoryList(t *testing.T) {
	store := setupTestStore(t)
	repo := store.Blogs()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 25; i++ {
		seedBlog(t, repo, fmt.Sprintf("blog%02d", i), base.Add(time.Duration(i)*time.Minute))
	}

	t.Run("default order is newest first", func(t *testing.T) {
		blogs, total, err := repo.List(ctx, blogQuery("", "", "", 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		require.Len(t, blogs, 10)
		assert.Equal(t, "blog25", blogs[0].Name)
		assert.Equal(t, "blog16", blogs[9].Name)
	})

	t.Run("second page", func(t *testing.T) {
		blogs, total, err := repo.List(ctx, blogQuery("", "name", "asc", 2, 10))
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		require.Len(t, blogs, 10)
		assert.Equal(t, "blog11", blogs[0].Name)
		assert.Equal(t, "blog20", blogs[9].Name)
	})

	t.Run("last partial page", func(t *testing.T) {
		blogs, _, err := repo.List(ctx, blogQuery("", "name", "asc", 3, 10))
		require.NoError(t, err)
		assert.Len(t, blogs, 5)
	})

	t.Run("page past the end", func(t *testing.T) {
		blogs, total, err := repo.List(ctx, blogQuery("", "", "", 9, 10))
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		assert.Empty(t, blogs)
	})
}

func TestBlogRepositorySearch(t *testing.T) {
	store := setupTestStore(t)
	repo := store.Blogs()
	ctx := context.Background()

	for _, name := range []string{"ABCdef", "xabcy", "ab c", "other", "a.c"} {
		seedBlog(t, repo, name, models.Now())
	}

	blogs, total, err := repo.List(ctx, blogQuery("abc", "name", "asc", 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, blogs, 2)
	assert.Equal(t, "ABCdef", blogs[0].Name)
	assert.Equal(t, "xabcy", blogs[1].Name)

	// the term is a literal, not a pattern
	blogs, total, err = repo.List(ctx, blogQuery("a.c", "", "", 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "a.c", blogs[0].Name)
}

func TestBlogRepositoryDeleteAll(t *testing.T) {
	store := setupTestStore(t)
	repo := store.Blogs()
	ctx := context.Background()

	seedBlog(t, repo, "one", models.Now())
	seedBlog(t, repo, "two", models.Now())
	require.NoError(t, store.Posts().Create(ctx, &models.Post{Title: "kept"}))

	require.NoError(t, repo.DeleteAll(ctx))

	_, total, err := repo.List(ctx, blogQuery("", "", "", 1, 10))
	require.NoError(t, err)
	assert.Zero(t, total)

	_, total, err = store.Posts().List(ctx, models.PostQuery{ListQuery: models.ListQuery{}.WithDefaults()})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
