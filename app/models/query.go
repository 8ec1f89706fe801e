package models

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultSortBy     = "createdAt"
	SortAsc           = "asc"
	SortDesc          = "desc"
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

var (
	blogSortFields = map[string]bool{
		"id": true, "name": true, "description": true, "websiteUrl": true,
		"createdAt": true, "isMembership": true,
	}
	postSortFields = map[string]bool{
		"id": true, "title": true, "shortDescription": true, "content": true,
		"blogId": true, "blogName": true, "createdAt": true,
	}
)

// ListQuery carries the sort and pagination parameters shared by every listing.
type ListQuery struct {
	SortBy        string
	SortDirection string
	PageNumber    int
	PageSize      int
}

// BlogQuery lists blogs, optionally restricted to names containing SearchNameTerm.
type BlogQuery struct {
	ListQuery
	SearchNameTerm string
}

// PostQuery lists posts, optionally restricted to a single blog.
type PostQuery struct {
	ListQuery
	BlogID string
}

// ParseListQuery reads sort and pagination parameters from raw query values.
// Missing or malformed numbers fall back to the defaults.
func ParseListQuery(get func(string) string) ListQuery {
	return ListQuery{
		SortBy:        get("sortBy"),
		SortDirection: get("sortDirection"),
		PageNumber:    parsePositive(get("pageNumber"), DefaultPageNumber),
		PageSize:      parsePositive(get("pageSize"), DefaultPageSize),
	}.WithDefaults()
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// WithDefaults fills unset parameters.
func (q ListQuery) WithDefaults() ListQuery {
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortDirection != SortAsc {
		q.SortDirection = SortDesc
	}
	if q.PageNumber < 1 {
		q.PageNumber = DefaultPageNumber
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	return q
}

// Ascending reports whether results are ordered smallest first.
func (q ListQuery) Ascending() bool {
	return q.SortDirection == SortAsc
}

// Skip is the number of matching records before the requested page.
// It saturates at math.MaxInt instead of overflowing.
func (q ListQuery) Skip() int {
	if q.PageNumber < 1 || q.PageSize < 1 {
		return 0
	}
	if q.PageNumber-1 > math.MaxInt/q.PageSize {
		return math.MaxInt
	}
	return (q.PageNumber - 1) * q.PageSize
}

// SortField returns the blog field to order by; unknown fields sort by creation time.
func (q BlogQuery) SortField() string {
	if blogSortFields[q.SortBy] {
		return q.SortBy
	}
	return DefaultSortBy
}

// SortField returns the post field to order by; unknown fields sort by creation time.
func (q PostQuery) SortField() string {
	if postSortFields[q.SortBy] {
		return q.SortBy
	}
	return DefaultSortBy
}

// Page is the paginated envelope returned by every listing.
type Page[T any] struct {
	PagesCount int `json:"pagesCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	Items      []T `json:"items"`
}

// NewPage wraps one page of items matching q out of totalCount.
func NewPage[T any](q ListQuery, totalCount int, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		PagesCount: PagesCount(totalCount, q.PageSize),
		Page:       q.PageNumber,
		PageSize:   q.PageSize,
		TotalCount: totalCount,
		Items:      items,
	}
}

// PagesCount is ceil(total/size).
func PagesCount(total, size int) int {
	if size < 1 {
		return 0
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// MapPage converts the items of a page keeping the envelope.
func MapPage[T, V any](p Page[T], f func(T) V) Page[V] {
	items := make([]V, len(p.Items))
	for i, item := range p.Items {
		items[i] = f(item)
	}
	return Page[V]{
		PagesCount: p.PagesCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		Items:      items,
	}
}
