package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairwayleague/league-data/internal/api/respond"
)

// GetSeasons returns the seasons present in the results table.
// @Summary List seasons
// @Description Returns every season with recorded results, ascending, plus the latest season.
// @Tags society
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /society/seasons [get]
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	seasons := h.store.Seasons()
	resp := map[string]interface{}{"seasons": seasons}
	if len(seasons) > 0 {
		resp["latest"] = seasons[len(seasons)-1]
	}
	respond.WriteJSON(w, http.StatusOK, resp)
}

// GetSeasonTiers returns the tiers recorded for a season.
// @Summary List season tiers
// @Description Returns the tiers with recorded events in a season, in first-seen order.
// @Tags society
// @Produce json
// @Param season path int true "Season number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /society/seasons/{season}/tiers [get]
func (h *Handler) GetSeasonTiers(w http.ResponseWriter, r *http.Request) {
	season, ok := intParam(r, "season")
	if !ok {
		respond.WriteNotFound(w, "season must be an integer")
		return
	}
	tiers, err := h.store.SeasonTiers(season)
	if err != nil {
		writeResult(w, nil, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"season": season,
		"tiers":  tiers,
	})
}

// GetLeaderboard returns the ranked season leaderboard.
// @Summary Season leaderboard
// @Description Returns per-player season totals ranked by points then wins. Optionally filtered to one tier. Without a season path segment the latest season is used.
// @Tags society
// @Produce json
// @Param season path int true "Season number"
// @Param tier query string false "Tier filter"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /society/leaderboard/{season} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var season int
	if raw := chi.URLParam(r, "season"); raw != "" {
		var ok bool
		if season, ok = intParam(r, "season"); !ok {
			respond.WriteNotFound(w, "season must be an integer")
			return
		}
	} else {
		seasons := h.store.Seasons()
		if len(seasons) == 0 {
			respond.WriteNotFound(w, "no seasons recorded")
			return
		}
		season = seasons[len(seasons)-1]
	}

	tier := r.URL.Query().Get("tier")
	board, err := h.store.Leaderboard(season, tier)
	if err != nil {
		writeResult(w, nil, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"season":      season,
		"tier":        tier,
		"leaderboard": board,
	})
}

// GetEvent returns one event's results grouped by tier.
// @Summary Event detail
// @Description Returns an event's rows sorted by rank and grouped by tier.
// @Tags society
// @Produce json
// @Param eventID path string true "Event identifier"
// @Success 200 {object} league.EventDetail
// @Failure 404 {object} respond.ErrorResponse
// @Router /society/events/{eventID} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	detail, err := h.store.Event(chi.URLParam(r, "eventID"))
	writeResult(w, detail, err)
}

// GetPlayerHistory returns a player's full event history.
// @Summary Player history
// @Description Returns a player's events in date order plus per-season summaries.
// @Tags society
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} league.PlayerHistory
// @Failure 404 {object} respond.ErrorResponse
// @Router /society/players/{playerID} [get]
func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "playerID")
	if !ok {
		respond.WriteNotFound(w, "player id must be an integer")
		return
	}
	history, err := h.store.PlayerHistory(id)
	writeResult(w, history, err)
}

// GetSocietyPlayers lists distinct society players, optionally fuzzy-filtered.
// @Summary List society players
// @Description Returns every distinct player in the results table. With q, fuzzy-matches names and orders by match quality.
// @Tags society
// @Produce json
// @Param q query string false "Fuzzy name query"
// @Success 200 {object} map[string]interface{}
// @Router /society/players [get]
func (h *Handler) GetSocietyPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var players interface{}
	if q != "" {
		players = h.store.SearchPlayers(q)
	} else {
		players = h.store.SocietyPlayers()
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"query":   q,
		"players": players,
	})
}

// GetSocietyResults returns the all-seasons event overview.
// @Summary Society results overview
// @Description Returns every season's events grouped by tier, with each event's winner.
// @Tags society
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /society/results [get]
func (h *Handler) GetSocietyResults(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"seasons": h.store.SocietyResults(),
	})
}

// GetHeadToHead compares two players across shared events.
// @Summary Head-to-head comparison
// @Description Compares two players by name over events where both have exactly one recorded score. Lower score wins.
// @Tags society
// @Produce json
// @Param player1 query string true "First player name"
// @Param player2 query string true "Second player name"
// @Success 200 {object} league.HeadToHead
// @Failure 400 {object} respond.ErrorResponse
// @Router /society/head-to-head [get]
func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	name1 := r.URL.Query().Get("player1")
	name2 := r.URL.Query().Get("player2")
	if name1 == "" || name2 == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_PLAYER",
			"player1 and player2 query parameters are required")
		return
	}
	respond.WriteJSON(w, http.StatusOK, h.store.HeadToHead(name1, name2))
}
