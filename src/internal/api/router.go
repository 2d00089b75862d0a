package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/validatedpatterns/reference-api/src/internal/domain"
	"github.com/validatedpatterns/reference-api/src/internal/log"
)

// Options tunes the router. Zero values fall back to defaults.
type Options struct {
	// CORSAllowedOrigin defaults to "*".
	CORSAllowedOrigin string
	// AccessLog defaults to log.DefaultAccessFormat.
	AccessLog *log.AccessFormatter
}

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(deps *domain.AppDependencies, opts Options) http.Handler {
	if opts.CORSAllowedOrigin == "" {
		opts.CORSAllowedOrigin = "*"
	}
	if opts.AccessLog == nil {
		// The default format is a constant known to compile.
		opts.AccessLog, _ = log.NewAccessFormatter(log.DefaultAccessFormat)
	}

	r := chi.NewRouter()

	// Apply middleware
	r.Use(Logger(opts.AccessLog))
	r.Use(Recovery)
	r.Use(CORS(opts.CORSAllowedOrigin))
	r.Use(JSONContentType)

	h := NewHandler(deps)

	r.Route(ExamplePath, func(r chi.Router) {
		r.Get("/", h.GetExamples)
		r.Post("/", h.CreateExample)
		r.Get("/{id}", h.GetExample)
		r.Put("/{id}", h.UpdateExample)
		r.Delete("/{id}", h.DeleteExample)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get("/live", h.Liveness)
		r.Get("/ready", h.Readiness)
	})

	return r
}
