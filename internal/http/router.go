package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"journal-ai/internal/handlers"
	"journal-ai/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Journal     service.JournalService
	DB          *sql.DB
	CORSOrigins []string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS(deps.CORSOrigins))

	entryHandler := handlers.NewEntryHandler(deps.Journal)
	trendsHandler := handlers.NewTrendsHandler(deps.Journal)
	tagsHandler := handlers.NewTagsHandler(deps.Journal)
	viewHandler := handlers.NewViewHandler(deps.Journal)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/", rootHandler)
		r.Post("/entries", entryHandler.Create)
		r.Get("/entries", entryHandler.List)
		r.Get("/entries/{id}", entryHandler.Get)
		r.Put("/entries/{id}", entryHandler.Update)
		r.Delete("/entries/{id}", entryHandler.Delete)
		r.Method(http.MethodGet, "/entries/{id}/view", viewHandler)
		r.Method(http.MethodGet, "/mood-trends/weekly", trendsHandler)
		r.Method(http.MethodGet, "/tags", tagsHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"message":"Journal App API"}`))
}
