package league

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadResultsCoercion(t *testing.T) {
	path := writeTable(t, t.TempDir(), ResultsFile,
		"player_id,player_name,event_id,event_date,score,rank,points,event_pr,season,tier\n"+
			"1, Alice ,E1,2024-01-06,70,1,10,90,1,Premier\n"+
			"oops,Bob,E1,2024-01-06,bad,,,,1,\n")

	rows, err := LoadResults(path)
	if err != nil {
		t.Fatalf("LoadResults: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("malformed rows must still be emitted, got %d", len(rows))
	}

	if rows[0].PlayerID == nil || *rows[0].PlayerID != 1 || rows[0].PlayerName != "Alice" {
		t.Errorf("row 0: %+v", rows[0])
	}
	bad := rows[1]
	if bad.PlayerID != nil {
		t.Errorf("unparseable player id must be nil, got %d", *bad.PlayerID)
	}
	if bad.Score != 0 || bad.Rank != 0 || bad.Points != 0 || bad.EventPR != 0 {
		t.Errorf("numeric defaults: %+v", bad)
	}
	if bad.Tier != "" {
		t.Errorf("tier default: %q", bad.Tier)
	}
}

func TestLoadMatchesOptionalFields(t *testing.T) {
	path := writeTable(t, t.TempDir(), TeamMatchesFile,
		"match_id,season,phase,date,winner_id,loser_id,point_diff\n"+
			"1,1,Finals,2024-03-01,10,11,3\n"+
			"2,1,Finals,,10,11,\n")

	ms, err := LoadMatches(path)
	if err != nil {
		t.Fatalf("LoadMatches: %v", err)
	}
	if ms[0].Date == nil || ms[0].PointDiff == nil || *ms[0].PointDiff != 3 {
		t.Errorf("completed match: %+v", ms[0])
	}
	if ms[1].Date != nil || ms[1].PointDiff != nil {
		t.Errorf("unplayed fixture must keep nil optionals: %+v", ms[1])
	}
}

func TestLoadAssignmentsSentinel(t *testing.T) {
	path := writeTable(t, t.TempDir(), AssignmentsFile,
		"player_id,team_id,team_name,opponent_player_id,team_opponent,event,season\n"+
			"1,10,Birdies,Avg,,E1,2\n"+
			"2,10,Birdies,3,11,E1,2\n")

	as, err := LoadAssignments(path)
	if err != nil {
		t.Fatalf("LoadAssignments: %v", err)
	}
	want := []TeamAssignment{
		{PlayerID: 1, TeamID: 10, TeamName: "Birdies", Opponent: Opponent{SocietyAverage: true}, Event: "E1", Season: 2},
		{PlayerID: 2, TeamID: 10, TeamName: "Birdies", Opponent: Opponent{PlayerID: 3}, TeamOpponent: intPtr(11), Event: "E1", Season: 2},
	}
	if diff := cmp.Diff(want, as); diff != "" {
		t.Errorf("assignments mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRosters(t *testing.T) {
	dir := t.TempDir()
	teamsPath := writeTable(t, dir, TeamsFile,
		"team_id,team_name,conference,player1,player2\n"+
			"10,Birdies,East,Alice,Bob\n")
	playersPath := writeTable(t, dir, PlayersFile,
		"player_id,player_name,conference\n"+
			"1,Alice,East\n")

	teams, err := LoadTeams(teamsPath)
	if err != nil {
		t.Fatalf("LoadTeams: %v", err)
	}
	wantTeam := Entity{ID: 10, Name: "Birdies", Conference: "East", Players: []string{"Alice", "Bob"}}
	if diff := cmp.Diff(wantTeam, teams[10]); diff != "" {
		t.Errorf("team mismatch (-want +got):\n%s", diff)
	}

	players, err := LoadPlayers(playersPath)
	if err != nil {
		t.Fatalf("LoadPlayers: %v", err)
	}
	if players[1].Name != "Alice" || players[1].Conference != "East" {
		t.Errorf("player: %+v", players[1])
	}
}

func TestLoadersMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	if _, err := LoadResults(missing); err == nil {
		t.Error("LoadResults must fail on an unopenable file")
	}
	if _, err := LoadAssignments(missing); err == nil {
		t.Error("LoadAssignments must fail on an unopenable file")
	}
}
