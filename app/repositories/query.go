package repositories

import (
	"cmp"
	"slices"
	"strings"

	"blogposts/app/models"
)

// MatchesName reports whether the blog name contains term, ignoring case.
// An empty term matches every blog.
func MatchesName(blog *models.Blog, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(blog.Name), strings.ToLower(term))
}

// SortBlogs orders blogs by field, breaking ties by ID in the same direction.
func SortBlogs(blogs []*models.Blog, field string, asc bool) {
	slices.SortStableFunc(blogs, func(a, b *models.Blog) int {
		c := compareBlogs(a, b, field)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if !asc {
			c = -c
		}
		return c
	})
}

func compareBlogs(a, b *models.Blog, field string) int {
	switch field {
	case "id":
		return cmp.Compare(a.ID, b.ID)
	case "name":
		return cmp.Compare(a.Name, b.Name)
	case "description":
		return cmp.Compare(a.Description, b.Description)
	case "websiteUrl":
		return cmp.Compare(a.WebsiteURL, b.WebsiteURL)
	case "isMembership":
		return compareBool(a.IsMembership, b.IsMembership)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// SortPosts orders posts by field, breaking ties by ID in the same direction.
func SortPosts(posts []*models.Post, field string, asc bool) {
	slices.SortStableFunc(posts, func(a, b *models.Post) int {
		c := comparePosts(a, b, field)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if !asc {
			c = -c
		}
		return c
	})
}

func comparePosts(a, b *models.Post, field string) int {
	switch field {
	case "id":
		return cmp.Compare(a.ID, b.ID)
	case "title":
		return cmp.Compare(a.Title, b.Title)
	case "shortDescription":
		return cmp.Compare(a.ShortDescription, b.ShortDescription)
	case "content":
		return cmp.Compare(a.Content, b.Content)
	case "blogId":
		return cmp.Compare(a.BlogID, b.BlogID)
	case "blogName":
		return cmp.Compare(a.BlogName, b.BlogName)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// Paginate returns the slice of items on the page described by q.
func Paginate[T any](items []T, q models.ListQuery) []T {
	start := q.Skip()
	if q.PageSize < 1 || start < 0 || start >= len(items) {
		return nil
	}
	end := len(items)
	if q.PageSize < end-start {
		end = start + q.PageSize
	}
	return items[start:end]
}
