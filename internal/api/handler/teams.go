package handler

import (
	"net/http"

	"github.com/fairwayleague/league-data/internal/api/respond"
)

// GetTeamStandings returns the season's team table.
// @Summary Team standings
// @Description Returns the season's teams ranked by points then wins, with season-average scores per assigned player.
// @Tags teams
// @Produce json
// @Param season path int true "Season number"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/standings/{season} [get]
func (h *Handler) GetTeamStandings(w http.ResponseWriter, r *http.Request) {
	season, ok := intParam(r, "season")
	if !ok {
		respond.WriteNotFound(w, "season must be an integer")
		return
	}
	standings, err := h.store.TeamStandings(season)
	if err != nil {
		writeResult(w, nil, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"season":    season,
		"standings": standings,
	})
}

// GetTeamDetail returns one team's season view.
// @Summary Team detail
// @Description Returns a team's roster with season averages and its per-event outcomes in date order.
// @Tags teams
// @Produce json
// @Param season path int true "Season number"
// @Param teamID path int true "Team ID"
// @Success 200 {object} league.TeamDetail
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/standings/{season}/{teamID} [get]
func (h *Handler) GetTeamDetail(w http.ResponseWriter, r *http.Request) {
	season, ok := intParam(r, "season")
	if !ok {
		respond.WriteNotFound(w, "season must be an integer")
		return
	}
	teamID, ok := intParam(r, "teamID")
	if !ok {
		respond.WriteNotFound(w, "team id must be an integer")
		return
	}
	detail, err := h.store.TeamDetail(teamID, season)
	writeResult(w, detail, err)
}
