// Package fixtures seeds a store with blogs and posts described in YAML.
//
//	blogs:
//	  - name: Go notes
//	    description: Notes about Go
//	    websiteUrl: https://go.example
//	    posts:
//	      - title: Hello
//	        shortDescription: First post
//	        content: Hello, world
package fixtures

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"blogposts/app/models"
	"blogposts/app/services"
	"blogposts/app/validation"

	"gopkg.in/yaml.v3"
)

// Seed is the decoded fixture document.
type Seed struct {
	Blogs []BlogFixture `yaml:"blogs"`
}

// BlogFixture is a blog with the posts to create under it.
type BlogFixture struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	WebsiteURL  string        `yaml:"websiteUrl"`
	Posts       []PostFixture `yaml:"posts"`
}

// PostFixture is a post created under its enclosing blog.
type PostFixture struct {
	Title            string `yaml:"title"`
	ShortDescription string `yaml:"shortDescription"`
	Content          string `yaml:"content"`
}

// Result counts the records created by Apply.
type Result struct {
	Blogs int
	Posts int
}

// Decode reads a seed document. Unknown fields are rejected.
func Decode(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &seed, nil
}

// LoadFile decodes the seed document at path.
func LoadFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Apply validates and creates every blog and post in the seed through the service layer.
// It stops at the first invalid entry; records created before it are kept.
func Apply(ctx context.Context, seed *Seed, blogs *services.BlogService, v *validation.Validator) (Result, error) {
	var res Result
	for i, bf := range seed.Blogs {
		in := models.BlogInput{
			Name:        bf.Name,
			Description: bf.Description,
			WebsiteURL:  bf.WebsiteURL,
		}
		if errs := v.ValidateBlog(&in); len(errs) > 0 {
			return res, fmt.Errorf("blogs[%d]: %s", i, describe(errs))
		}

		blog, err := blogs.CreateBlog(ctx, in)
		if err != nil {
			return res, fmt.Errorf("blogs[%d]: %w", i, err)
		}
		res.Blogs++

		for j, pf := range bf.Posts {
			pin := models.BlogPostInput{
				Title:            pf.Title,
				ShortDescription: pf.ShortDescription,
				Content:          pf.Content,
			}
			if errs := v.ValidateBlogPost(&pin); len(errs) > 0 {
				return res, fmt.Errorf("blogs[%d].posts[%d]: %s", i, j, describe(errs))
			}
			if _, err := blogs.CreatePostUnderBlog(ctx, blog.ID, pin); err != nil {
				return res, fmt.Errorf("blogs[%d].posts[%d]: %w", i, j, err)
			}
			res.Posts++
		}
	}
	return res, nil
}

func describe(errs validation.FieldErrors) string {
	msgs := make([]string, len(errs))
	for i, fe := range errs {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, ", ")
}
