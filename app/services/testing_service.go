package services

import (
	"context"
	"fmt"

	"blogposts/app/repositories"
)

// TestingService wipes the store between end-to-end test runs
type TestingService struct {
	blogRepo repositories.BlogRepository
	postRepo repositories.PostRepository
}

// NewTestingService creates a new TestingService
func NewTestingService(blogRepo repositories.BlogRepository, postRepo repositories.PostRepository) *TestingService {
	return &TestingService{
		blogRepo: blogRepo,
		postRepo: postRepo,
	}
}

// DeleteAll removes every blog and post
func (s *TestingService) DeleteAll(ctx context.Context) error {
	if err := s.postRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete posts: %w", err)
	}
	if err := s.blogRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete blogs: %w", err)
	}
	return nil
}
