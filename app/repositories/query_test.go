package repositories

import (
	"math"
	"testing"
	"time"

	"blogposts/app/models"

	"github.com/stretchr/testify/assert"
)

func TestMatchesName(t *testing.T) {
	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "ABCdef", term: "abc", want: true},
		{name: "xabcy", term: "abc", want: true},
		{name: "ab c", term: "abc", want: false},
		{name: "anything", term: "", want: true},
		{name: "Привет", term: "прив", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesName(&models.Blog{Name: tt.name}, tt.term))
		})
	}
}

func TestSortBlogs(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	blogs := []*models.Blog{
		{ID: "2", Name: "b", CreatedAt: base},
		{ID: "1", Name: "a", CreatedAt: base.Add(time.Hour), IsMembership: true},
		{ID: "3", Name: "b", CreatedAt: base.Add(2 * time.Hour)},
	}

	SortBlogs(blogs, "name", true)
	assert.Equal(t, []string{"1", "2", "3"}, blogIDs(blogs))

	SortBlogs(blogs, "name", false)
	assert.Equal(t, []string{"3", "2", "1"}, blogIDs(blogs))

	SortBlogs(blogs, "createdAt", false)
	assert.Equal(t, []string{"3", "1", "2"}, blogIDs(blogs))

	SortBlogs(blogs, "isMembership", true)
	assert.Equal(t, []string{"2", "3", "1"}, blogIDs(blogs))
}

func TestSortPosts(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := []*models.Post{
		{ID: "1", BlogName: "z", CreatedAt: base},
		{ID: "2", BlogName: "a", CreatedAt: base.Add(time.Hour)},
	}

	SortPosts(posts, "blogName", true)
	assert.Equal(t, "2", posts[0].ID)

	SortPosts(posts, "createdAt", true)
	assert.Equal(t, "1", posts[0].ID)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, models.ListQuery{PageNumber: 1, PageSize: 2}))
	assert.Equal(t, []int{5}, Paginate(items, models.ListQuery{PageNumber: 3, PageSize: 2}))
	assert.Empty(t, Paginate(items, models.ListQuery{PageNumber: 4, PageSize: 2}))
	assert.Empty(t, Paginate(items, models.ListQuery{PageNumber: 1, PageSize: 0}))
}

func TestPaginateHugeValues(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, Paginate(items, models.ListQuery{PageNumber: 1, PageSize: math.MaxInt}))
	assert.Empty(t, Paginate(items, models.ListQuery{PageNumber: math.MaxInt, PageSize: 10}))
	assert.Empty(t, Paginate(items, models.ListQuery{PageNumber: 2, PageSize: math.MaxInt - 1}))
	assert.Empty(t, Paginate(items, models.ListQuery{PageNumber: math.MaxInt, PageSize: math.MaxInt}))
	assert.Equal(t, []int{4, 5}, Paginate(items, models.ListQuery{PageNumber: 2, PageSize: 3}))
}

func blogIDs(blogs []*models.Blog) []string {
	ids := make([]string, len(blogs))
	for i, b := range blogs {
		ids[i] = b.ID
	}
	return ids
}
