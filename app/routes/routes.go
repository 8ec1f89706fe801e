package routes

import (
	"log/slog"
	"net/http"

	"blogposts/app/controllers"
	"blogposts/app/middleware"
	"blogposts/app/repositories"
	"blogposts/app/services"
	"blogposts/app/validation"

	"github.com/gorilla/mux"
)

// Dependencies holds the collaborators the route table is built from.
type Dependencies struct {
	Blogs          repositories.BlogRepository
	Posts          repositories.PostRepository
	Credentials    *middleware.Credentials
	AllowedOrigins []string
	CORSMaxAge     int
	Logger         *slog.Logger
}

// SetupRoutes defines the application's routes and returns the root handler.
func SetupRoutes(deps Dependencies) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recoverer(deps.Logger))
	router.Use(middleware.ContentTypeJSON)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	validator := validation.New(deps.Blogs)
	blogController := controllers.NewBlogController(
		services.NewBlogService(deps.Blogs, deps.Posts), validator, deps.Logger)
	postController := controllers.NewPostController(
		services.NewPostService(deps.Posts, deps.Blogs), validator, deps.Logger)
	testingController := controllers.NewTestingController(
		services.NewTestingService(deps.Blogs, deps.Posts), deps.Logger)

	auth := middleware.BasicAuth(deps.Credentials)
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	// Blogs endpoints
	blogs := router.PathPrefix("/blogs").Subrouter()
	blogs.HandleFunc("", blogController.Index).Methods("GET")
	blogs.Handle("", protected(blogController.Create)).Methods("POST")
	blogs.HandleFunc("/{id}", blogController.Show).Methods("GET")
	blogs.Handle("/{id}", protected(blogController.Update)).Methods("PUT")
	blogs.Handle("/{id}", protected(blogController.Delete)).Methods("DELETE")

	// Posts of a blog
	blogs.HandleFunc("/{blogId}/posts", blogController.Posts).Methods("GET")
	blogs.Handle("/{blogId}/posts", protected(blogController.CreatePost)).Methods("POST")

	// Posts endpoints
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.Handle("", protected(postController.Create)).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.Handle("/{id}", protected(postController.Update)).Methods("PUT")
	posts.Handle("/{id}", protected(postController.Delete)).Methods("DELETE")

	// Test suite support
	router.HandleFunc("/testing/all-data", testingController.DeleteAll).Methods("DELETE")

	return middleware.CORS(deps.AllowedOrigins, deps.CORSMaxAge)(router)
}
