package league

import "testing"

func TestCompareHeadToHead(t *testing.T) {
	rows := []ResultRow{
		resultRow(1, "Alice", "E1", "2024-01-06", 68, 1, 10, 90, 1, "Premier"),
		resultRow(2, "Bob", "E1", "2024-01-06", 70, 2, 7, 85, 1, "Premier"),
		resultRow(1, "Alice", "E2", "2024-01-13", 72, 2, 7, 85, 1, "Premier"),
		resultRow(2, "Bob", "E2", "2024-01-13", 72, 3, 5, 80, 1, "Premier"),
		resultRow(1, "Alice", "E3", "2024-01-20", 71, 1, 10, 90, 1, "Premier"), // Bob absent
		resultRow(2, "Bob", "E4", "2024-01-27", 75, 5, 2, 70, 1, "Premier"),    // Alice absent
	}

	got := CompareHeadToHead(rows, "alice", "BOB")
	if got.Wins1 != 1 || got.Wins2 != 0 || got.Ties != 1 {
		t.Errorf("summary: wins1=%d wins2=%d ties=%d, want 1/0/1", got.Wins1, got.Wins2, got.Ties)
	}
	if len(got.Events) != 2 {
		t.Fatalf("expected 2 common events, got %d", len(got.Events))
	}
	// Sorted ascending by (season, date); lower score wins.
	if got.Events[0].EventID != "E1" || got.Events[0].Winner != 1 {
		t.Errorf("E1: %+v", got.Events[0])
	}
	if got.Events[1].EventID != "E2" || got.Events[1].Winner != 0 {
		t.Errorf("E2 should tie: %+v", got.Events[1])
	}
}

func TestCompareHeadToHeadDuplicateRowsExcluded(t *testing.T) {
	rows := []ResultRow{
		resultRow(1, "Alice", "E1", "d", 68, 1, 10, 90, 1, "Premier"),
		resultRow(1, "Alice", "E1", "d", 69, 2, 7, 85, 1, "Premier"), // duplicate entry
		resultRow(2, "Bob", "E1", "d", 70, 3, 5, 80, 1, "Premier"),
	}
	got := CompareHeadToHead(rows, "Alice", "Bob")
	if len(got.Events) != 0 {
		t.Errorf("events with duplicate rows must not compare: %+v", got.Events)
	}
}

func TestCompareHeadToHeadUnknownNames(t *testing.T) {
	rows := []ResultRow{
		resultRow(1, "Alice", "E1", "d", 68, 1, 10, 90, 1, "Premier"),
	}
	got := CompareHeadToHead(rows, "Nobody", "Alice")
	if len(got.Events) != 0 || got.Wins1 != 0 || got.Wins2 != 0 || got.Ties != 0 {
		t.Errorf("unknown name must yield zero common events, got %+v", got)
	}
}

func TestCompareHeadToHeadSameEventIDAcrossSeasons(t *testing.T) {
	rows := []ResultRow{
		resultRow(1, "Alice", "Week1", "2023-01-07", 70, 1, 10, 90, 1, "Premier"),
		resultRow(2, "Bob", "Week1", "2024-01-06", 72, 2, 7, 85, 2, "Premier"),
	}
	got := CompareHeadToHead(rows, "Alice", "Bob")
	if len(got.Events) != 0 {
		t.Errorf("event keys are (season, event): %+v", got.Events)
	}
}
