package models

import (
	"strings"
	"time"
)

// TimeLayout renders timestamps as ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// BlogView is the public wire shape of a blog.
type BlogView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"websiteUrl"`
	CreatedAt    string `json:"createdAt"`
	IsMembership bool   `json:"isMembership"`
}

// Normalize trims the fields that are stored trimmed.
func (in *BlogInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
}

// NewBlog builds a blog that has not been persisted yet.
func NewBlog(in BlogInput) *Blog {
	b := &Blog{}
	b.Apply(in)
	b.BeforeCreate()
	return b
}

// BeforeCreate stamps the creation time and resets fields owned by the server.
func (b *Blog) BeforeCreate() {
	b.CreatedAt = Now()
	b.IsMembership = false
}

// Apply replaces the mutable fields of the blog.
func (b *Blog) Apply(in BlogInput) {
	b.Name = in.Name
	b.Description = in.Description
	b.WebsiteURL = in.WebsiteURL
}

// View maps the blog into its wire shape.
func (b *Blog) View() BlogView {
	return BlogView{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		CreatedAt:    FormatTime(b.CreatedAt),
		IsMembership: b.IsMembership,
	}
}

// Now returns the current time truncated to what the wire format can carry.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// FormatTime renders t using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
