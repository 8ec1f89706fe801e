package mongo

import (
	"testing"
	"time"

	"blogposts/app/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, ok := objectID(oid.Hex())
	assert.True(t, ok)
	assert.Equal(t, oid, got)

	_, ok = objectID("not-an-object-id")
	assert.False(t, ok)
}

func TestListOptions(t *testing.T) {
	q := models.ListQuery{SortBy: "name", SortDirection: "asc", PageNumber: 3, PageSize: 5}

	opts := listOptions(q, "name")
	assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}, opts.Sort)
	assert.Equal(t, int64(10), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)

	q.SortDirection = "desc"
	opts = listOptions(q, "id")
	assert.Equal(t, bson.D{{Key: "_id", Value: -1}}, opts.Sort)
}

func TestDocumentRoundTrip(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	blog := &models.Blog{Name: "n", Description: "d", WebsiteURL: "https://n.io", CreatedAt: created}

	doc := newBlogDocument(blog)
	doc.ID = primitive.NewObjectID()
	got := doc.model()
	assert.Equal(t, doc.ID.Hex(), got.ID)
	assert.Equal(t, "n", got.Name)
	assert.True(t, created.Equal(got.CreatedAt))

	post := &models.Post{Title: "t", BlogID: "b", BlogName: "n", CreatedAt: created}
	pdoc := newPostDocument(post)
	assert.Equal(t, "n", pdoc.model().BlogName)
}
