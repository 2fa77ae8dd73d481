package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fairwayleague/league-data/internal/config"
	"github.com/fairwayleague/league-data/internal/league"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	tables := map[string]string{
		league.ResultsFile: "player_id,player_name,event_id,event_date,score,rank,points,event_pr,season,tier\n" +
			"1,Alice,E1,2024-01-06,70,1,10,90,1,Premier\n" +
			"2,Bob,E1,2024-01-06,72,2,7,85,1,Premier\n",
		league.TeamsFile: "team_id,team_name,conference,player1,player2\n" +
			"10,Birdies,East,Alice,Bob\n",
		league.TeamMatchesFile: "match_id,season,phase,date,winner_id,loser_id,point_diff\n",
		league.PlayersFile: "player_id,player_name,conference\n" +
			"1,Alice,East\n2,Bob,East\n",
		league.PlayerMatchesFile: "match_id,season,phase,date,winner_id,loser_id,point_diff\n" +
			"1,1,Finals,2024-02-01,1,2,3\n",
		league.AssignmentsFile: "player_id,team_id,team_name,opponent_player_id,team_opponent,event,season\n" +
			"1,10,Birdies,Avg,,E1,1\n",
	}
	for name, body := range tables {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{
		DataDir:          dir,
		CORSAllowOrigins: []string{"*"},
	}
	store := league.NewStore(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(NewRouter(store, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("GET %s: decode: %v", path, err)
	}
	return resp.StatusCode, body
}

func TestLeaderboardRoute(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/api/v1/society/leaderboard/1")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	board, ok := body["leaderboard"].([]interface{})
	if !ok || len(board) != 2 {
		t.Fatalf("leaderboard = %v", body["leaderboard"])
	}
	top := board[0].(map[string]interface{})
	if top["player_name"] != "Alice" || top["points"] != float64(10) {
		t.Errorf("top row = %v", top)
	}

	// No season segment falls back to the latest season.
	status, body = get(t, srv, "/api/v1/society/leaderboard")
	if status != http.StatusOK || body["season"] != float64(1) {
		t.Errorf("latest-season fallback: status = %d, body = %v", status, body)
	}
}

func TestUnknownSelectorsAre404(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/v1/society/leaderboard/9",
		"/api/v1/society/leaderboard/abc",
		"/api/v1/society/events/E9",
		"/api/v1/society/players/99",
		"/api/v1/brackets/3v3/standings",
		"/api/v1/teams/standings/9",
	} {
		status, body := get(t, srv, path)
		if status != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, status)
			continue
		}
		errObj, ok := body["error"].(map[string]interface{})
		if !ok || errObj["code"] != "NOT_FOUND" {
			t.Errorf("%s: error = %v", path, body["error"])
		}
	}
}

func TestHeadToHeadRoute(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/api/v1/society/head-to-head?player1=Alice&player2=Bob")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["wins1"] != float64(1) || body["wins2"] != float64(0) {
		t.Errorf("body = %v", body)
	}

	status, _ = get(t, srv, "/api/v1/society/head-to-head?player1=Alice")
	if status != http.StatusBadRequest {
		t.Errorf("missing player2: status = %d, want 400", status)
	}
}

func TestBracketRoutes(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/api/v1/brackets/1v1/standings")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["conference"] != "East" {
		t.Errorf("default conference = %v", body["conference"])
	}
	standings := body["standings"].([]interface{})
	if len(standings) != 2 {
		t.Fatalf("standings = %v", standings)
	}
	top := standings[0].(map[string]interface{})
	if top["name"] != "Alice" || top["wins"] != float64(1) {
		t.Errorf("top row = %v", top)
	}
}

func TestHealthData(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv, "/health/data")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	tables := body["tables"].([]interface{})
	if len(tables) != 6 {
		t.Errorf("tables = %d, want 6", len(tables))
	}
}
