package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairwayleague/league-data/internal/api/respond"
	"github.com/fairwayleague/league-data/internal/league"
)

func bracketMode(r *http.Request) league.Mode {
	return league.Mode(chi.URLParam(r, "mode"))
}

// GetBracketConferences lists a bracket's conference labels.
// @Summary List bracket conferences
// @Description Returns the conference labels present in a bracket's roster, ascending.
// @Tags brackets
// @Produce json
// @Param mode path string true "Bracket mode" Enums(1v1, 2v2)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /brackets/{mode}/conferences [get]
func (h *Handler) GetBracketConferences(w http.ResponseWriter, r *http.Request) {
	mode := bracketMode(r)
	conferences, err := h.store.BracketConferences(mode)
	if err != nil {
		writeResult(w, nil, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"mode":        mode,
		"conferences": conferences,
	})
}

// GetPairwiseStandings returns one conference's standings for a bracket.
// @Summary Bracket standings
// @Description Returns per-entity win/loss records and point differentials for one conference, ranked by wins then differential. Without a conference parameter the first conference is used.
// @Tags brackets
// @Produce json
// @Param mode path string true "Bracket mode" Enums(1v1, 2v2)
// @Param conference query string false "Conference label (defaults to the first)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /brackets/{mode}/standings [get]
func (h *Handler) GetPairwiseStandings(w http.ResponseWriter, r *http.Request) {
	mode := bracketMode(r)
	conference := r.URL.Query().Get("conference")
	if conference == "" {
		conferences, err := h.store.BracketConferences(mode)
		if err != nil {
			writeResult(w, nil, err)
			return
		}
		if len(conferences) == 0 {
			respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
				"mode":      mode,
				"standings": []league.EntitySummary{},
			})
			return
		}
		conference = conferences[0]
	}
	standings, err := h.store.PairwiseStandings(mode, conference)
	if err != nil {
		writeResult(w, nil, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"mode":       mode,
		"conference": conference,
		"standings":  standings,
	})
}

// GetFixtures returns a bracket's matches grouped by conference and phase.
// @Summary Bracket fixtures
// @Description Returns every match in a bracket, grouped by the winner's conference and by phase in canonical phase order.
// @Tags brackets
// @Produce json
// @Param mode path string true "Bracket mode" Enums(1v1, 2v2)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /brackets/{mode}/fixtures [get]
func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	mode := bracketMode(r)
	fixtures, err := h.store.Fixtures(mode)
	if err != nil {
		writeResult(w, nil, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"mode":        mode,
		"conferences": fixtures,
	})
}

// GetEntities lists a bracket's roster.
// @Summary List bracket entities
// @Description Returns every player (1v1) or team (2v2) in the bracket, sorted by name.
// @Tags brackets
// @Produce json
// @Param mode path string true "Bracket mode" Enums(1v1, 2v2)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /brackets/{mode}/entities [get]
func (h *Handler) GetEntities(w http.ResponseWriter, r *http.Request) {
	mode := bracketMode(r)
	entities, err := h.store.Entities(mode)
	if err != nil {
		writeResult(w, nil, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"mode":     mode,
		"entities": entities,
	})
}

// GetEntityDetail returns one bracket entity's profile.
// @Summary Bracket entity detail
// @Description Returns a 1v1 player's or 2v2 team's record and match history, newest first.
// @Tags brackets
// @Produce json
// @Param mode path string true "Bracket mode" Enums(1v1, 2v2)
// @Param entityID path int true "Entity ID"
// @Success 200 {object} league.EntityDetail
// @Failure 404 {object} respond.ErrorResponse
// @Router /brackets/{mode}/entities/{entityID} [get]
func (h *Handler) GetEntityDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "entityID")
	if !ok {
		respond.WriteNotFound(w, "entity id must be an integer")
		return
	}
	detail, err := h.store.EntityDetail(bracketMode(r), id)
	writeResult(w, detail, err)
}
