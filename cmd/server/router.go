package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/clean-api/internal/api"
	apiMiddleware "github.com/phrazzld/clean-api/internal/api/middleware"
	"github.com/phrazzld/clean-api/internal/api/shared"
	"github.com/unrolled/secure"
)

// setupRouter creates the application router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	serverCfg := app.config.Server
	development := serverCfg.IsDevelopment()

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   serverCfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{shared.TraceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		IsDevelopment:         development,
	}).Handler)
	r.Use(middleware.RequestSize(serverCfg.BodyLimitBytes))

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.NotFoundHandler)

	userHandler := api.NewUserHandler(app.userService, development)
	postHandler := api.NewPostHandler(app.postService, development)
	healthHandler := api.NewHealthHandler(app.started)

	r.Get("/health", healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.CreateUser)
			r.Get("/", userHandler.GetAllUsers)
			r.Get("/{id}", userHandler.GetUserByID)
			r.Patch("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", postHandler.CreatePost)
			r.Get("/", postHandler.GetAllPosts)
			r.Get("/{id}", postHandler.GetPostByID)
			r.Patch("/{id}", postHandler.UpdatePost)
			r.Delete("/{id}", postHandler.DeletePost)
		})
	})

	return r
}
