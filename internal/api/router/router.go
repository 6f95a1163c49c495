package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nztours/travel-ai-platform/internal/conversation"
	httpmiddleware "github.com/nztours/travel-ai-platform/internal/http/middleware"
	"github.com/nztours/travel-ai-platform/internal/webchat"
	"github.com/nztours/travel-ai-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	ConversationHandler *conversation.Handler
	WebchatHandler      *webchat.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.ConversationHandler.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/chat", func(r chi.Router) {
		r.Post("/message", cfg.ConversationHandler.Message)
		r.Get("/history", cfg.ConversationHandler.History)
		r.Post("/clear", cfg.ConversationHandler.Clear)
	})

	r.Get("/search", cfg.ConversationHandler.Search)

	if cfg.WebchatHandler != nil {
		r.Route("/webchat", func(r chi.Router) {
			r.Get("/ws", cfg.WebchatHandler.HandleWebSocket)
			r.Post("/message", cfg.WebchatHandler.HandleMessage)
		})
	}

	return r
}
