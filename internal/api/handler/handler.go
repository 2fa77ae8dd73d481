// Package handler provides HTTP handlers for all API endpoints.
// Handlers only parse selectors, call the league store and translate its
// results to JSON; every aggregation lives in internal/league.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fairwayleague/league-data/internal/api/respond"
	"github.com/fairwayleague/league-data/internal/config"
	"github.com/fairwayleague/league-data/internal/league"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store *league.Store
	cfg   *config.Config
}

// New creates a Handler with shared dependencies.
func New(store *league.Store, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// writeResult maps a store error to the response: unknown selectors become
// a 404, anything else an internal error.
func writeResult(w http.ResponseWriter, v interface{}, err error) {
	if err != nil {
		if errors.Is(err, league.ErrNotFound) {
			respond.WriteNotFound(w, err.Error())
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, v)
}

// intParam parses an integer path parameter. The boolean is false when the
// parameter is absent or not a number; such URLs identify nothing and get
// a 404, mirroring typed route converters.
func intParam(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	return n, err == nil
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Fairway League Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckData reports per-table cache state and row counts.
// @Summary Data health check
// @Description Returns per-table load state, row counts and cache mtimes.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/data [get]
func (h *Handler) HealthCheckData(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"tables":    h.store.Status(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
