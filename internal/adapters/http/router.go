// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. authenticate guards the
// routes that change posts; nil leaves them open.
func NewRouter(
	postHandler *handlers.PostHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	authenticate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound,
			fmt.Sprintf("no route for %s %s", req.Method, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/", healthHandler.Banner)
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Post("/auth/signup", authHandler.SignUp)
	r.Post("/auth/login", authHandler.Login)

	r.Get("/posts", postHandler.ListPosts)
	r.Get("/posts/search", postHandler.SearchPosts)
	r.Get("/posts/{id}", postHandler.GetPost)

	if authenticate == nil {
		authenticate = func(next http.Handler) http.Handler { return next }
	}
	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Post("/posts", postHandler.CreatePost)
		r.Delete("/posts", postHandler.PurgePosts)
		r.Put("/posts/{id}", postHandler.UpdatePost)
		r.Patch("/posts/{id}", postHandler.UpdatePost)
		r.Delete("/posts/{id}", postHandler.DeletePost)
	})

	return r
}
