package services

import (
	"context"
	"errors"
	"fmt"

	"blogposts/app/models"
	"blogposts/app/repositories"
)

// PostService handles business logic for posts
type PostService struct {
	postRepo repositories.PostRepository
	blogRepo repositories.BlogRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, blogRepo repositories.BlogRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		blogRepo: blogRepo,
	}
}

// ListPosts retrieves one page of all posts
func (s *PostService) ListPosts(ctx context.Context, q models.PostQuery) (models.Page[*models.Post], error) {
	q.BlogID = ""
	return listPosts(ctx, s.postRepo, q)
}

// GetPostByID retrieves a post, returning repositories.ErrNotFound when it does not exist
func (s *PostService) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost stores a new post owned by the blog named in the input
func (s *PostService) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	blog, err := s.blogRepo.GetByID(ctx, in.BlogID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog %s: %w", in.BlogID, err)
	}
	return createPost(ctx, s.postRepo, in, blog)
}

// UpdatePost replaces the mutable fields of a post and refreshes its blog name from the
// referenced blog. The name is re-read even when blogId is unchanged, so a post updated
// after its blog was renamed picks up the new name. It reports false when no post matched.
func (s *PostService) UpdatePost(ctx context.Context, id string, in models.PostInput) (bool, error) {
	blog, err := s.blogRepo.GetByID(ctx, in.BlogID)
	if err != nil {
		return false, fmt.Errorf("failed to load blog %s: %w", in.BlogID, err)
	}

	post := &models.Post{ID: id}
	post.Apply(in, blog)

	err = s.postRepo.Update(ctx, post)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update post %s: %w", id, err)
	}
	return true, nil
}

// DeletePostByID deletes a post. It reports false when no post matched.
func (s *PostService) DeletePostByID(ctx context.Context, id string) (bool, error) {
	err := s.postRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	return true, nil
}

func listPosts(ctx context.Context, repo repositories.PostRepository, q models.PostQuery) (models.Page[*models.Post], error) {
	q.ListQuery = q.ListQuery.WithDefaults()

	posts, total, err := repo.List(ctx, q)
	if err != nil {
		return models.Page[*models.Post]{}, fmt.Errorf("failed to list posts: %w", err)
	}
	return models.NewPage(q.ListQuery, total, posts), nil
}

func createPost(ctx context.Context, repo repositories.PostRepository, in models.PostInput, blog *models.Blog) (*models.Post, error) {
	post := models.NewPost(in, blog)
	if err := repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}
