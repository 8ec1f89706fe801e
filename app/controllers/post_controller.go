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

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
	validator   *validation.Validator
	logger      *slog.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, validator *validation.Validator, logger *slog.Logger) *PostController {
	return &PostController{
		postService: postService,
		validator:   validator,
		logger:      logger,
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	q := models.PostQuery{ListQuery: models.ParseListQuery(r.URL.Query().Get)}

	page, err := pc.postService.ListPosts(r.Context(), q)
	if err != nil {
		sendError(w, r, pc.logger, "Failed to fetch posts", err)
		return
	}

	sendJSON(w, http.StatusOK, models.MapPage(page, (*models.Post).View))
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPostByID(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, repositories.ErrNotFound) {
		sendNotFound(w)
		return
	}
	if err != nil {
		sendError(w, r, pc.logger, "Failed to fetch post", err)
		return
	}

	sendJSON(w, http.StatusOK, post.View())
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := pc.validInput(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.CreatePost(r.Context(), in)
	if errors.Is(err, repositories.ErrNotFound) {
		sendNotFound(w)
		return
	}
	if err != nil {
		sendError(w, r, pc.logger, "Failed to create post", err)
		return
	}

	sendJSON(w, http.StatusCreated, post.View())
}

// Update handles replacing the mutable fields of a post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := pc.validInput(w, r)
	if !ok {
		return
	}

	found, err := pc.postService.UpdatePost(r.Context(), mux.Vars(r)["id"], in)
	if errors.Is(err, repositories.ErrNotFound) {
		sendNotFound(w)
		return
	}
	if err != nil {
		sendError(w, r, pc.logger, "Failed to update post", err)
		return
	}
	if !found {
		sendNotFound(w)
		return
	}

	sendNoContent(w)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := pc.postService.DeletePostByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		sendError(w, r, pc.logger, "Failed to delete post", err)
		return
	}
	if !removed {
		sendNotFound(w)
		return
	}

	sendNoContent(w)
}

// validInput decodes and validates a post body, answering the request when it is invalid
func (pc *PostController) validInput(w http.ResponseWriter, r *http.Request) (models.PostInput, bool) {
	var in models.PostInput
	decodeInput(r, &in)

	errs, err := pc.validator.ValidatePost(r.Context(), &in)
	if err != nil {
		sendError(w, r, pc.logger, "Failed to validate post", err)
		return in, false
	}
	if len(errs) > 0 {
		sendValidationErrors(w, errs)
		return in, false
	}
	return in, true
}
