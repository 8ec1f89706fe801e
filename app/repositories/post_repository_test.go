package repositories

import (
	"context"
	"testing"
	"time"

	"blogposts/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postQuery(blogID, sortBy, dir string, page, size int) models.PostQuery {
	return models.PostQuery{
		ListQuery: models.ListQuery{
			SortBy:        sortBy,
			SortDirection: dir,
			PageNumber:    page,
			PageSize:      size,
		}.WithDefaults(),
		BlogID: blogID,
	}
}

func TestPostRepository(t *testing.T) {
	store := setupTestStore(t)
	repo := store.Posts()
	ctx := context.Background()

	t.Run("create and get post", func(t *testing.T) {
		post := &models.Post{
			Title:            "Test Post",
			ShortDescription: "short",
			Content:          "This is a test post content",
			BlogID:           "b1",
			BlogName:         "Blog One",
			CreatedAt:        models.Now(),
		}

		require.NoError(t, repo.Create(ctx, post))
		assert.NotEmpty(t, post.ID)

		retrieved, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Title, retrieved.Title)
		assert.Equal(t, "Blog One", retrieved.BlogName)
	})

	t.Run("update post", func(t *testing.T) {
		created := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
		post := &models.Post{Title: "Original", BlogID: "b1", BlogName: "Blog One", CreatedAt: created}
		require.NoError(t, repo.Create(ctx, post))

		err := repo.Update(ctx, &models.Post{
			ID:               post.ID,
			Title:            "Updated",
			ShortDescription: "s",
			Content:          "c",
			BlogID:           "b2",
			BlogName:         "Blog Two",
		})
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated", updated.Title)
		assert.Equal(t, "b2", updated.BlogID)
		assert.Equal(t, "Blog Two", updated.BlogName)
		assert.True(t, created.Equal(updated.CreatedAt))
	})

	t.Run("update missing post", func(t *testing.T) {
		err := repo.Update(ctx, &models.Post{ID: "ghost"})
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete post", func(t *testing.T) {
		post := &models.Post{Title: "Post to Delete", CreatedAt: models.Now()}
		require.NoError(t, repo.Create(ctx, post))

		require.NoError(t, repo.Delete(ctx, post.ID))
		_, err := repo.GetByID(ctx, post.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, post.ID), ErrNotFound)
	})
}

func TestPostRepositoryListByBlog(t *testing.T) {
	store := setupTestStore(t)
	repo := store.Posts()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		blogID := "even"
		if i%2 == 1 {
			blogID = "odd"
		}
		post := &models.Post{
			Title:     string(rune('a' + i)),
			BlogID:    blogID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, post))
	}

	t.Run("all posts", func(t *testing.T) {
		posts, total, err := repo.List(ctx, postQuery("", "", "", 1, 5))
		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, posts, 5)
		assert.Equal(t, "l", posts[0].Title)
	})

	t.Run("filtered by blog", func(t *testing.T) {
		posts, total, err := repo.List(ctx, postQuery("odd", "title", "asc", 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 6, total)
		require.Len(t, posts, 6)
		for _, p := range posts {
			assert.Equal(t, "odd", p.BlogID)
		}
		assert.Equal(t, "b", posts[0].Title)
	})

	t.Run("delete by blog", func(t *testing.T) {
		removed, err := repo.DeleteByBlogID(ctx, "even")
		require.NoError(t, err)
		assert.Equal(t, 6, removed)

		_, total, err := repo.List(ctx, postQuery("even", "", "", 1, 10))
		require.NoError(t, err)
		assert.Zero(t, total)

		_, total, err = repo.List(ctx, postQuery("", "", "", 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 6, total)
	})

	t.Run("delete all", func(t *testing.T) {
		require.NoError(t, repo.DeleteAll(ctx))
		_, total, err := repo.List(ctx, postQuery("", "", "", 1, 10))
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
