// Package validation checks inbound blog and post fields before they reach the store.
// Each validator returns one error per failing field, in declaration order.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"blogposts/app/models"
	"blogposts/app/repositories"

	"github.com/go-playground/validator/v10"
)

var websiteURLPattern = regexp.MustCompile(`^https://([a-zA-Z0-9_-]+\.)+[a-zA-Z0-9_-]+(/[a-zA-Z0-9_-]+)*/?$`)

// FieldError names an input field and why it was rejected.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// FieldErrors is the set of rejected fields; empty means valid.
type FieldErrors []FieldError

// Has reports whether field already failed.
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// BlogFinder resolves a blog by id, returning repositories.ErrNotFound when absent.
type BlogFinder interface {
	GetByID(ctx context.Context, id string) (*models.Blog, error)
}

// Validator validates blog and post inputs.
type Validator struct {
	validate *validator.Validate
	blogs    BlogFinder
}

// New creates a Validator that checks post blog references against blogs.
func New(blogs BlogFinder) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("https_url", isHTTPSURL); err != nil {
		panic(fmt.Sprintf("register https_url: %v", err))
	}

	return &Validator{validate: v, blogs: blogs}
}

func isHTTPSURL(fl validator.FieldLevel) bool {
	return websiteURLPattern.MatchString(fl.Field().String())
}

// ValidateBlog trims and validates a blog input.
func (v *Validator) ValidateBlog(in *models.BlogInput) FieldErrors {
	in.Normalize()
	return v.fieldErrors(in)
}

// ValidateBlogPost trims and validates a post created under a known blog.
func (v *Validator) ValidateBlogPost(in *models.BlogPostInput) FieldErrors {
	in.Normalize()
	return v.fieldErrors(in)
}

// ValidatePost trims and validates a post input, including that blogId names an existing
// blog. Store failures during the lookup are returned as err.
func (v *Validator) ValidatePost(ctx context.Context, in *models.PostInput) (FieldErrors, error) {
	in.Normalize()
	errs := v.fieldErrors(in)
	if errs.Has("blogId") {
		return errs, nil
	}

	_, err := v.blogs.GetByID(ctx, in.BlogID)
	if errors.Is(err, repositories.ErrNotFound) {
		return append(errs, incorrect("blogId")), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up blog %q: %w", in.BlogID, err)
	}
	return errs, nil
}

func (v *Validator) fieldErrors(s interface{}) FieldErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// only returned for non-struct input
		panic(err)
	}

	var errs FieldErrors
	for _, fe := range verrs {
		if errs.Has(fe.Field()) {
			continue
		}
		errs = append(errs, incorrect(fe.Field()))
	}
	return errs
}

func incorrect(field string) FieldError {
	return FieldError{Message: "Incorrect " + field, Field: field}
}
