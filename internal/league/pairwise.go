package league

import "sort"

// Conferences returns the distinct conference labels in a roster, ascending.
func Conferences(entities map[int]Entity) []string {
	seen := make(map[string]bool)
	for _, e := range entities {
		seen[e.Conference] = true
	}
	confs := make([]string, 0, len(seen))
	for c := range seen {
		confs = append(confs, c)
	}
	sort.Strings(confs)
	return confs
}

// BuildPairwiseStandings reduces win/lose match records into per-entity
// standings for one conference. Only completed matches contribute: a fixture
// with an absent point differential affects no accumulator at all. The
// winner gains the differential, the loser loses it.
//
// Ordering is wins descending then point differential descending.
func BuildPairwiseStandings(entities map[int]Entity, matches []MatchRecord, conference string) []EntitySummary {
	stats := make(map[int]*EntitySummary)
	var order []int
	for id, e := range entities {
		if e.Conference != conference {
			continue
		}
		stats[id] = &EntitySummary{ID: id, Name: e.Name}
		order = append(order, id)
	}
	sort.Ints(order)

	for _, m := range matches {
		if m.PointDiff == nil {
			continue
		}
		diff := *m.PointDiff
		if s, ok := stats[m.WinnerID]; ok {
			s.Wins++
			s.MatchesPlayed++
			s.PointDiff += diff
		}
		if s, ok := stats[m.LoserID]; ok {
			s.Losses++
			s.MatchesPlayed++
			s.PointDiff -= diff
		}
	}

	board := make([]EntitySummary, 0, len(order))
	for _, id := range order {
		board = append(board, *stats[id])
	}
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Wins != board[j].Wins {
			return board[i].Wins > board[j].Wins
		}
		return board[i].PointDiff > board[j].PointDiff
	})
	return board
}
