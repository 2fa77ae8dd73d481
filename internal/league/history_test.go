package league

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildPlayerHistory(t *testing.T) {
	rows := []ResultRow{
		resultRow(1, "Alice", "E2", "2024-01-13", 72, 3, 5, 80, 2, "Premier"),
		resultRow(1, "Alice", "E1", "2023-05-06", 70, 1, 10, 90, 1, "Championship"),
		resultRow(1, "Alice", "E3", "2024-02-03", 69, 1, 10, 86, 2, "Premier"),
		resultRow(2, "Bob", "E1", "2023-05-06", 75, 2, 7, 60, 1, "Championship"),
	}

	h, ok := BuildPlayerHistory(rows, 1)
	if !ok {
		t.Fatal("player 1 should have history")
	}
	if h.PlayerName != "Alice" || h.TotalWins != 2 {
		t.Errorf("name=%q wins=%d, want Alice/2", h.PlayerName, h.TotalWins)
	}
	if len(h.Events) != 3 || h.Events[0].EventID != "E1" || h.Events[2].EventID != "E3" {
		t.Errorf("events must sort by date: %+v", h.Events)
	}

	want := []SeasonSummary{
		{Season: 1, Tiers: []string{"Championship"}, PrettyRating: 90},
		{Season: 2, Tiers: []string{"Premier"}, PrettyRating: 83}, // (80+86)/2
	}
	if diff := cmp.Diff(want, h.Seasons); diff != "" {
		t.Errorf("season summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlayerHistoryUnknownPlayer(t *testing.T) {
	rows := []ResultRow{resultRow(1, "Alice", "E1", "d", 70, 1, 10, 90, 1, "Premier")}
	if _, ok := BuildPlayerHistory(rows, 99); ok {
		t.Error("unknown player must not resolve")
	}
}
