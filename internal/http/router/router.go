// Package router assembles the HTTP surface: CORS, logging, recovery, the
// file endpoints and the swagger UI.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/r2box/media-service/internal/http/handlers/files"
	appMiddleware "github.com/r2box/media-service/internal/http/middleware"
	"github.com/r2box/media-service/internal/utils/response"

	_ "github.com/r2box/media-service/docs/swagger"
)

// New builds the router over the given handler set. CORS is permissive (any
// origin) for the allowed method set; pre-flight OPTIONS requests are answered
// before any handler runs.
func New(h *files.Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// The CORS handler only answers OPTIONS requests carrying pre-flight
	// headers. A bare OPTIONS must still get an empty 200, not a 405.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusMethodNotAllowed, response.Err("Method not allowed"))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusNotFound, response.Err("Not found"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", h.Upload())
		r.Post("/videoUpload", h.VideoUpload())
		r.Get("/image", h.SignedURL())
		r.Get("/media", h.List())
		r.Delete("/delete", h.Delete())
	})

	return r
}
