package routes

import (
	"net/http"

	"github.com/clinscribe/transcript-correction/backend/internal/api/handlers"
	"github.com/clinscribe/transcript-correction/backend/internal/api/middleware"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	correctionHandler *handlers.CorrectionHandler
	metrics           *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	correctionHandler *handlers.CorrectionHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		correctionHandler: correctionHandler,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Correction endpoints
	r.mux.HandleFunc("POST /api/correct", r.correctionHandler.CorrectTranscript)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on error responses
	handler = middleware.CORSMiddleware(handler)

	return handler
}
