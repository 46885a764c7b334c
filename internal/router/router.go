package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"healthpulse-backend/internal/handlers"
	"healthpulse-backend/internal/middleware"
)

// New builds the standalone server's routes.
func New(
	chatHandler *handlers.ChatHandler,
	limiter middleware.Limiter,
	corsOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigin))

	r.NotFound(jsonError(http.StatusNotFound, "Not found"))
	r.MethodNotAllowed(jsonError(http.StatusMethodNotAllowed, "Method not allowed"))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))
		r.Post("/healthChat", chatHandler.HealthChat)
	})

	return r
}

// NewFunction builds the handler behind the Cloud Function trigger. The
// platform owns the URL, so every path reaches the chat handler.
func NewFunction(chatHandler *handlers.ChatHandler, corsOrigin string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigin))

	r.MethodNotAllowed(jsonError(http.StatusMethodNotAllowed, "Method not allowed"))

	r.Post("/*", chatHandler.HealthChat)

	return r
}

func jsonError(status int, message string) http.HandlerFunc {
	body := []byte(`{"error":"` + message + `"}`)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}
}
