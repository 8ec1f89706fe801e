package repositories

import (
	"context"

	"blogposts/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

var _ PostRepository = (*BadgerPostRepository)(nil)

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// List retrieves a sorted page of posts, restricted to one blog when q.BlogID is set
func (r *BadgerPostRepository) List(ctx context.Context, q models.PostQuery) ([]*models.Post, int, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, PostKeyPrefix, func(_, val []byte) error {
			var post models.Post
			if err := unmarshalEntity(val, &post); err != nil {
				return err
			}
			if q.BlogID == "" || post.BlogID == q.BlogID {
				posts = append(posts, &post)
			}
			return nil
		})
	})
	if err != nil {
		return nil, 0, err
	}

	SortPosts(posts, q.SortField(), q.Ascending())
	return Paginate(posts, q.ListQuery), len(posts), nil
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, entityKey(PostKeyPrefix, id), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create creates a new post
func (r *BadgerPostRepository) Create(ctx context.Context, post *models.Post) error {
	post.ID = newID()
	return r.db.Update(func(txn *badger.Txn) error {
		return putEntity(txn, entityKey(PostKeyPrefix, post.ID), post)
	})
}

// Update replaces the mutable fields of an existing post
func (r *BadgerPostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(PostKeyPrefix, post.ID)

		// Verify post exists
		var existing models.Post
		if err := getEntity(txn, key, &existing); err != nil {
			return err
		}

		existing.Title = post.Title
		existing.ShortDescription = post.ShortDescription
		existing.Content = post.Content
		existing.BlogID = post.BlogID
		existing.BlogName = post.BlogName
		return putEntity(txn, key, &existing)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(ctx context.Context, id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(PostKeyPrefix, id)

		// Verify post exists
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

// DeleteByBlogID deletes every post owned by blogID
func (r *BadgerPostRepository) DeleteByBlogID(ctx context.Context, blogID string) (int, error) {
	return deleteMatching(r.db, PostKeyPrefix, func(val []byte) (bool, error) {
		var post models.Post
		if err := unmarshalEntity(val, &post); err != nil {
			return false, err
		}
		return post.BlogID == blogID, nil
	})
}

// DeleteAll removes every post
func (r *BadgerPostRepository) DeleteAll(ctx context.Context) error {
	_, err := deleteMatching(r.db, PostKeyPrefix, nil)
	return err
}
