package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/booking"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/catalog"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/chat"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/clinic"
	httpmiddleware "github.com/healthplus-lab/lab-chatbot-backend/internal/http/middleware"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/offers"
	"github.com/healthplus-lab/lab-chatbot-backend/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	CatalogHandler *catalog.Handler
	ClinicHandler  *clinic.Handler
	ChatHandler    *chat.Handler
	BookingHandler *booking.Handler
	OffersHandler  *offers.Handler
	MetricsHandler http.Handler

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
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

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.RateLimitRPS > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		}
		api.Get("/tests", cfg.CatalogHandler.ListTests)
		api.Get("/labinfo", cfg.ClinicHandler.GetInfo)
		api.Post("/chat", cfg.ChatHandler.HandleChat)
		api.Post("/book", cfg.BookingHandler.CreateBooking)
		api.Get("/offers", cfg.OffersHandler.GetOffers)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
