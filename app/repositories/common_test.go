package repositories

import (
	"context"
	"testing"
	"time"

	"blogposts/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	store, err := OpenStore("", true, nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedBlog(t *testing.T, repo *BadgerBlogRepository, name string, createdAt time.Time) *models.Blog {
	blog := &models.Blog{
		Name:        name,
		Description: "about " + name,
		WebsiteURL:  "https://" + name + ".example.com",
		CreatedAt:   createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), blog))
	return blog
}

func TestEntityHelpers(t *testing.T) {
	store := setupTestStore(t)
	key := entityKey(BlogKeyPrefix, "abc")
	assert.Equal(t, "blog:abc", string(key))

	t.Run("get missing key", func(t *testing.T) {
		err := store.DB().View(func(txn *badger.Txn) error {
			var blog models.Blog
			return getEntity(txn, key, &blog)
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put and get", func(t *testing.T) {
		err := store.DB().Update(func(txn *badger.Txn) error {
			return putEntity(txn, key, &models.Blog{ID: "abc", Name: "Stored"})
		})
		require.NoError(t, err)

		var blog models.Blog
		err = store.DB().View(func(txn *badger.Txn) error {
			return getEntity(txn, key, &blog)
		})
		require.NoError(t, err)
		assert.Equal(t, "Stored", blog.Name)
	})

	t.Run("scan prefix only visits prefix", func(t *testing.T) {
		err := store.DB().Update(func(txn *badger.Txn) error {
			return putEntity(txn, entityKey(PostKeyPrefix, "p1"), &models.Post{ID: "p1"})
		})
		require.NoError(t, err)

		var keys []string
		err = store.DB().View(func(txn *badger.Txn) error {
			return scanPrefix(txn, BlogKeyPrefix, func(key, _ []byte) error {
				keys = append(keys, string(key))
				return nil
			})
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"blog:abc"}, keys)
	})
}

func TestMarshalEntity(t *testing.T) {
	t.Run("marshal post", func(t *testing.T) {
		post := &models.Post{ID: "p1", Title: "Test Post", BlogName: "Blog"}

		data, err := marshalEntity(post)
		assert.NoError(t, err)

		var unmarshaled models.Post
		assert.NoError(t, unmarshalEntity(data, &unmarshaled))
		assert.Equal(t, *post, unmarshaled)
	})

	t.Run("marshal invalid entity", func(t *testing.T) {
		invalidEntity := struct {
			Ch chan int
		}{
			Ch: make(chan int),
		}

		_, err := marshalEntity(invalidEntity)
		assert.Error(t, err)
	})

	t.Run("unmarshal invalid JSON", func(t *testing.T) {
		var post models.Post
		assert.Error(t, unmarshalEntity([]byte(`{"id":1,invalid json}`), &post))
	})
}

func TestNewID(t *testing.T) {
	a, b := newID(), newID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
