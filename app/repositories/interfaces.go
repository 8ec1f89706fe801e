package repositories

import (
	"context"

	"blogposts/app/models"
)

// BlogRepository defines the interface for blog data access
type BlogRepository interface {
	// List returns one page of blogs matching q and the total number of matches.
	List(ctx context.Context, q models.BlogQuery) ([]*models.Blog, int, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	// Create stores blog and assigns its ID.
	Create(ctx context.Context, blog *models.Blog) error
	// Update writes the mutable fields of blog to the record with blog.ID.
	// It returns ErrNotFound when no record matches and never inserts.
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// List returns one page of posts matching q and the total number of matches.
	List(ctx context.Context, q models.PostQuery) ([]*models.Post, int, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// Create stores post and assigns its ID.
	Create(ctx context.Context, post *models.Post) error
	// Update writes the mutable fields of post to the record with post.ID.
	// It returns ErrNotFound when no record matches and never inserts.
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	// DeleteByBlogID removes every post owned by blogID and reports how many were removed.
	DeleteByBlogID(ctx context.Context, blogID string) (int, error)
	DeleteAll(ctx context.Context) error
}
