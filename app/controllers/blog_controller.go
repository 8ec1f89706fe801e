package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"blogposts/app/models"
	"blogposts/app/repositories"
	"blogposts/app/services"
	"blogposts/app/validation"

	"github.com/gorilla/mux"
)

// BlogController handles HTTP requests for blogs and the posts nested under them
type BlogController struct {
	blogService *services.BlogService
	validator   *validation.Validator
	logger      *slog.Logger
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService, validator *validation.Validator, logger *slog.Logger) *BlogController {
	return &BlogController{
		blogService: blogService,
		validator:   validator,
		logger:      logger,
	}
}

// Index handles listing blogs
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := models.BlogQuery{
		ListQuery:      models.ParseListQuery(query.Get),
		SearchNameTerm: query.Get("searchNameTerm"),
	}

	page, err := bc.blogService.ListBlogs(r.Context(), q)
	if err != nil {
		sendError(w, r, bc.logger, "Failed to fetch blogs", err)
		return
	}

	sendJSON(w, http.StatusOK, models.MapPage(page, (*models.Blog).View))
}

// Show handles displaying a single blog
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	blog, err := bc.blogService.GetBlogByID(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, repositories.ErrNotFound) {
		sendNotFound(w)
		return
	}
	if err != nil {
		sendError(w, r, bc.logger, "Failed to fetch blog", err)
		return
	}

	sendJSON(w, http.StatusOK, blog.View())
}

// Posts handles listing the posts of a blog
func (bc *BlogController) Posts(w http.ResponseWriter, r *http.Request) {
	q := models.PostQuery{ListQuery: models.ParseListQuery(r.URL.Query().Get)}

	page, err := bc.blogService.ListPostsForBlog(r.Context(), mux.Vars(r)["blogId"], q)
	if errors.Is(err, repositories.ErrNotFound) {
		sendNotFound(w)
		return
	}
	if err != nil {
		sendError(w, r, bc.logger, "Failed to fetch posts", err)
		return
	}

	sendJSON(w, http.StatusOK, models.MapPage(page, (*models.Post).View))
}

// Create handles creating a new blog
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.BlogInput
	decodeInput(r, &in)
	if errs := bc.validator.ValidateBlog(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	blog, err := bc.blogService.CreateBlog(r.Context(), in)
	if err != nil {
		sendError(w, r, bc.logger, "Failed to create blog", err)
		return
	}

	sendJSON(w, http.StatusCreated, blog.View())
}

// CreatePost handles creating a post under the blog addressed by the URL
func (bc *BlogController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in models.BlogPostInput
	decodeInput(r, &in)
	if errs := bc.validator.ValidateBlogPost(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	post, err := bc.blogService.CreatePostUnderBlog(r.Context(), mux.Vars(r)["blogId"], in)
	if errors.Is(err, repositories.ErrNotFound) {
		sendNotFound(w)
		return
	}
	if err != nil {
		sendError(w, r, bc.logger, "Failed to create post", err)
		return
	}

	sendJSON(w, http.StatusCreated, post.View())
}

// Update handles replacing the mutable fields of a blog
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.BlogInput
	decodeInput(r, &in)
	if errs := bc.validator.ValidateBlog(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	found, err := bc.blogService.UpdateBlog(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		sendError(w, r, bc.logger, "Failed to update blog", err)
		return
	}
	if !found {
		sendNotFound(w)
		return
	}

	sendNoContent(w)
}

// Delete handles deleting a blog and its posts
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := bc.blogService.DeleteBlogByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendError(w, r, bc.logger, "Failed to delete blog", err)
		return
	}
	if !removed {
		sendNotFound(w)
		return
	}

	sendNoContent(w)
}
