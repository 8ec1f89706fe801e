package repositories

import (
	"context"

	"blogposts/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db *badger.DB
}

var _ BlogRepository = (*BadgerBlogRepository)(nil)

// NewBadgerBlogRepository creates a new BadgerBlogRepository
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// List retrieves a filtered, sorted page of blogs
func (r *BadgerBlogRepository) List(ctx context.Context, q models.BlogQuery) ([]*models.Blog, int, error) {
	var blogs []*models.Blog
	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, BlogKeyPrefix, func(_, val []byte) error {
			var blog models.Blog
			if err := unmarshalEntity(val, &blog); err != nil {
				return err
			}
			if MatchesName(&blog, q.SearchNameTerm) {
				blogs = append(blogs, &blog)
			}
			return nil
		})
	})
	if err != nil {
		return nil, 0, err
	}

	SortBlogs(blogs, q.SortField(), q.Ascending())
	return Paginate(blogs, q.ListQuery), len(blogs), nil
}

// GetByID retrieves a blog by ID
func (r *BadgerBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, entityKey(BlogKeyPrefix, id), &blog)
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Create creates a new blog
func (r *BadgerBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	blog.ID = newID()
	return r.db.Update(func(txn *badger.Txn) error {
		return putEntity(txn, entityKey(BlogKeyPrefix, blog.ID), blog)
	})
}

// Update replaces the mutable fields of an existing blog
func (r *BadgerBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(BlogKeyPrefix, blog.ID)

		// Verify blog exists
		var existing models.Blog
		if err := getEntity(txn, key, &existing); err != nil {
			return err
		}

		existing.Name = blog.Name
		existing.Description = blog.Description
		existing.WebsiteURL = blog.WebsiteURL
		return putEntity(txn, key, &existing)
	})
}

// Delete deletes a blog by ID
func (r *BadgerBlogRepository) Delete(ctx context.Context, id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(BlogKeyPrefix, id)

		// Verify blog exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// DeleteAll removes every blog
func (r *BadgerBlogRepository) DeleteAll(ctx context.Context) error {
	_, err := deleteMatching(r.db, BlogKeyPrefix, nil)
	return err
}
