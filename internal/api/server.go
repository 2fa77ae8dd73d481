package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/fairwayleague/league-data/internal/api/handler"
	"github.com/fairwayleague/league-data/internal/config"
	"github.com/fairwayleague/league-data/internal/league"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(store *league.Store, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "Link"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(store, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/data", h.HealthCheckData)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Society results and standings
		r.Route("/society", func(r chi.Router) {
			r.Get("/seasons", h.GetSeasons)
			r.Get("/seasons/{season}/tiers", h.GetSeasonTiers)
			r.Get("/leaderboard", h.GetLeaderboard)
			r.Get("/leaderboard/{season}", h.GetLeaderboard)
			r.Get("/events/{eventID}", h.GetEvent)
			r.Get("/players", h.GetSocietyPlayers)
			r.Get("/players/{playerID}", h.GetPlayerHistory)
			r.Get("/results", h.GetSocietyResults)
			r.Get("/head-to-head", h.GetHeadToHead)
		})

		// Knockout brackets (1v1 and 2v2)
		r.Route("/brackets/{mode}", func(r chi.Router) {
			r.Get("/conferences", h.GetBracketConferences)
			r.Get("/standings", h.GetPairwiseStandings)
			r.Get("/fixtures", h.GetFixtures)
			r.Get("/entities", h.GetEntities)
			r.Get("/entities/{entityID}", h.GetEntityDetail)
		})

		// Season team competition
		r.Get("/teams/standings/{season}", h.GetTeamStandings)
		r.Get("/teams/standings/{season}/{teamID}", h.GetTeamDetail)
	})

	return r
}
