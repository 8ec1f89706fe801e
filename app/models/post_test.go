package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPost(t *testing.T) {
	blog := &Blog{ID: "b1", Name: "Gophers"}
	in := PostInput{
		Title:            "Hello",
		ShortDescription: "Short",
		Content:          "Body",
		BlogID:           "b1",
	}

	post := NewPost(in, blog)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "b1", post.BlogID)
	assert.Equal(t, "Gophers", post.BlogName)
	assert.False(t, post.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now(), post.CreatedAt, time.Second)
}

func TestPostApplyKeepsCreatedAt(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	post := &Post{ID: "p1", CreatedAt: created, BlogID: "b1", BlogName: "Old"}

	post.Apply(PostInput{Title: "T", ShortDescription: "S", Content: "C", BlogID: "b2"}, &Blog{ID: "b2", Name: "New"})

	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, created, post.CreatedAt)
	assert.Equal(t, "b2", post.BlogID)
	assert.Equal(t, "New", post.BlogName)
}

func TestPostInputNormalize(t *testing.T) {
	in := PostInput{Title: "  spaced  ", ShortDescription: "  kept  ", Content: "\tbody\n"}
	in.Normalize()

	assert.Equal(t, "spaced", in.Title)
	assert.Equal(t, "  kept  ", in.ShortDescription)
	assert.Equal(t, "body", in.Content)
}

func TestBlogPostInputForBlog(t *testing.T) {
	in := BlogPostInput{Title: "T", ShortDescription: "S", Content: "C"}
	full := in.ForBlog("b9")

	assert.Equal(t, PostInput{Title: "T", ShortDescription: "S", Content: "C", BlogID: "b9"}, full)
}

func TestPostView(t *testing.T) {
	post := &Post{
		ID:        "p1",
		Title:     "T",
		BlogID:    "b1",
		BlogName:  "Blog",
		CreatedAt: time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC),
	}

	view := post.View()
	assert.Equal(t, "p1", view.ID)
	assert.Equal(t, "Blog", view.BlogName)
	assert.Equal(t, "2024-05-06T07:08:09.123Z", view.CreatedAt)
}
