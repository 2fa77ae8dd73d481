package league

import (
	"fmt"
	"log/slog"

	"github.com/fairwayleague/league-data/internal/tabular"
)

// LoadResults reads the main tournament table. Every row is emitted even
// when fields are malformed; coercion substitutes defaults per field.
func LoadResults(path string) ([]ResultRow, error) {
	records, err := tabular.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	rows := make([]ResultRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, ResultRow{
			PlayerID:   rec.IntPtr("player_id"),
			PlayerName: rec.Text("player_name"),
			EventID:    rec.Text("event_id"),
			EventDate:  rec.Text("event_date"),
			Score:      rec.Int("score"),
			Rank:       rec.Int("rank"),
			Points:     rec.Int("points"),
			EventPR:    rec.Int("event_pr"),
			Season:     rec.Int("season"),
			Tier:       rec.Text("tier"),
		})
	}
	return rows, nil
}

// LoadMatches reads a 1v1 or 2v2 match table. Blank or malformed dates and
// point differentials become nil: an absent differential marks an unplayed
// fixture and must stay distinguishable from zero.
func LoadMatches(path string) ([]MatchRecord, error) {
	records, err := tabular.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}
	ms := make([]MatchRecord, 0, len(records))
	for _, rec := range records {
		ms = append(ms, MatchRecord{
			MatchID:   rec.Int("match_id"),
			Season:    rec.Int("season"),
			Phase:     rec.Text("phase"),
			Date:      rec.TextPtr("date"),
			WinnerID:  rec.Int("winner_id"),
			LoserID:   rec.Int("loser_id"),
			PointDiff: rec.IntPtr("point_diff"),
		})
	}
	return ms, nil
}

// LoadTeams reads the 2v2 team roster keyed by team id.
func LoadTeams(path string) (map[int]Entity, error) {
	records, err := tabular.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	teams := make(map[int]Entity, len(records))
	for _, rec := range records {
		id := rec.Int("team_id")
		teams[id] = Entity{
			ID:         id,
			Name:       rec.Text("team_name"),
			Conference: rec.Text("conference"),
			Players:    []string{rec.Text("player1"), rec.Text("player2")},
		}
	}
	return teams, nil
}

// LoadPlayers reads the 1v1 player roster keyed by player id.
func LoadPlayers(path string) (map[int]Entity, error) {
	records, err := tabular.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	players := make(map[int]Entity, len(records))
	for _, rec := range records {
		id := rec.Int("player_id")
		players[id] = Entity{
			ID:         id,
			Name:       rec.Text("player_name"),
			Conference: rec.Text("conference"),
		}
	}
	return players, nil
}

// LoadAssignments reads the team assignment table. The opponent column holds
// either a player id or the literal "Avg" sentinel; the sentinel becomes the
// society-average variant of Opponent.
func LoadAssignments(path string) ([]TeamAssignment, error) {
	records, err := tabular.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	as := make([]TeamAssignment, 0, len(records))
	for _, rec := range records {
		var opp Opponent
		if rec.Text("opponent_player_id") == SocietyAverageSentinel {
			opp.SocietyAverage = true
		} else {
			opp.PlayerID = rec.Int("opponent_player_id")
		}
		as = append(as, TeamAssignment{
			PlayerID:     rec.Int("player_id"),
			TeamID:       rec.Int("team_id"),
			TeamName:     rec.Text("team_name"),
			Opponent:     opp,
			TeamOpponent: rec.IntPtr("team_opponent"),
			Event:        rec.Text("event"),
			Season:       rec.Int("season"),
		})
	}
	return as, nil
}

// logged wraps a roster-dependent loader so an unreadable file is a hard
// failure reported to the caller as an empty lookup with a logged cause,
// rather than a crash.
func logged[T any](logger *slog.Logger, table string, load func(string) (T, error)) func(string) (T, error) {
	return func(path string) (T, error) {
		v, err := load(path)
		if err != nil {
			logger.Error("table load failed", "table", table, "path", path, "error", err)
		}
		return v, err
	}
}
