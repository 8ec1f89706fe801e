package models

import "strings"

// PostView is the public wire shape of a post.
type PostView struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BlogID           string `json:"blogId"`
	BlogName         string `json:"blogName"`
	CreatedAt        string `json:"createdAt"`
}

// Normalize trims the fields that are stored trimmed.
func (in *PostInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
}

// Normalize trims the fields that are stored trimmed.
func (in *BlogPostInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
}

// ForBlog turns the input into a full post input owned by blogID.
func (in BlogPostInput) ForBlog(blogID string) PostInput {
	return PostInput{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blogID,
	}
}

// NewPost builds a post owned by blog that has not been persisted yet.
func NewPost(in PostInput, blog *Blog) *Post {
	p := &Post{}
	p.Apply(in, blog)
	p.BeforeCreate()
	return p
}

// BeforeCreate stamps the creation time.
func (p *Post) BeforeCreate() {
	p.CreatedAt = Now()
}

// Apply replaces the mutable fields of the post and copies the owning blog's name.
func (p *Post) Apply(in PostInput, blog *Blog) {
	p.Title = in.Title
	p.ShortDescription = in.ShortDescription
	p.Content = in.Content
	p.BlogID = blog.ID
	p.BlogName = blog.Name
}

// View maps the post into its wire shape.
func (p *Post) View() PostView {
	return PostView{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		BlogID:           p.BlogID,
		BlogName:         p.BlogName,
		CreatedAt:        FormatTime(p.CreatedAt),
	}
}
