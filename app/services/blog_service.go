package services

import (
	"context"
	"errors"
	"fmt"

	"blogposts/app/models"
	"blogposts/app/repositories"
)

// BlogService handles business logic for blogs and the posts addressed through them
type BlogService struct {
	blogRepo repositories.BlogRepository
	postRepo repositories.PostRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository, postRepo repositories.PostRepository) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		postRepo: postRepo,
	}
}

// ListBlogs retrieves one page of blogs matching q
func (s *BlogService) ListBlogs(ctx context.Context, q models.BlogQuery) (models.Page[*models.Blog], error) {
	q.ListQuery = q.ListQuery.WithDefaults()

	blogs, total, err := s.blogRepo.List(ctx, q)
	if err != nil {
		return models.Page[*models.Blog]{}, fmt.Errorf("failed to list blogs: %w", err)
	}
	return models.NewPage(q.ListQuery, total, blogs), nil
}

// GetBlogByID retrieves a blog, returning repositories.ErrNotFound when it does not exist
func (s *BlogService) GetBlogByID(ctx context.Context, id string) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

// ListPostsForBlog retrieves one page of the posts owned by blogID
func (s *BlogService) ListPostsForBlog(ctx context.Context, blogID string, q models.PostQuery) (models.Page[*models.Post], error) {
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return models.Page[*models.Post]{}, err
	}

	q.BlogID = blogID
	return listPosts(ctx, s.postRepo, q)
}

// CreateBlog stores a new blog built from a validated input
func (s *BlogService) CreateBlog(ctx context.Context, in models.BlogInput) (*models.Blog, error) {
	blog := models.NewBlog(in)
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return blog, nil
}

// CreatePostUnderBlog stores a new post owned by blogID, copying the blog's current name.
// The blog read and the post write are separate operations: a rename landing between them
// is not reflected in the new post.
func (s *BlogService) CreatePostUnderBlog(ctx context.Context, blogID string, in models.BlogPostInput) (*models.Post, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return createPost(ctx, s.postRepo, in.ForBlog(blog.ID), blog)
}

// UpdateBlog replaces the mutable fields of a blog. It reports false when no blog matched.
func (s *BlogService) UpdateBlog(ctx context.Context, id string, in models.BlogInput) (bool, error) {
	blog := &models.Blog{ID: id}
	blog.Apply(in)

	err := s.blogRepo.Update(ctx, blog)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to update blog %s: %w", id, err)
	}
	return true, nil
}

// DeleteBlogByID deletes a blog and all its posts. It reports false when no blog matched.
func (s *BlogService) DeleteBlogByID(ctx context.Context, id string) (bool, error) {
	err := s.blogRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete blog %s: %w", id, err)
	}

	if _, err := s.postRepo.DeleteByBlogID(ctx, id); err != nil {
		return true, fmt.Errorf("failed to delete posts of blog %s: %w", id, err)
	}
	return true, nil
}
