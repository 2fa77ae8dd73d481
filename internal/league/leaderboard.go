package league

import (
	"math"
	"sort"
)

// Seasons returns the distinct seasons present in the results, ascending.
func Seasons(rows []ResultRow) []int {
	seen := make(map[int]bool)
	for _, r := range rows {
		seen[r.Season] = true
	}
	seasons := make([]int, 0, len(seen))
	for s := range seen {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)
	return seasons
}

// TiersPresent returns the distinct tiers recorded for a season, ascending.
func TiersPresent(rows []ResultRow, season int) []string {
	seen := make(map[string]bool)
	for _, r := range rows {
		if r.Season == season {
			seen[r.Tier] = true
		}
	}
	tiers := make([]string, 0, len(seen))
	for t := range seen {
		tiers = append(tiers, t)
	}
	sort.Strings(tiers)
	return tiers
}

// BuildLeaderboard reduces one season's rows (optionally one tier) to a
// ranked summary per player. Rows without a player id are excluded, every
// other row counts as one event played. The pretty rating is the mean of
// event_pr rounded half-to-even.
//
// Ordering is points descending then wins descending; residual ties keep
// input order. No third tie-break key is defined.
func BuildLeaderboard(rows []ResultRow, season int, tier string) []PlayerSummary {
	type acc struct {
		summary PlayerSummary
		prSum   int
		prCount int
	}

	accs := make(map[int]*acc)
	var order []int
	for _, r := range rows {
		if r.Season != season || r.PlayerID == nil {
			continue
		}
		if tier != "" && r.Tier != tier {
			continue
		}
		pid := *r.PlayerID
		a, ok := accs[pid]
		if !ok {
			a = &acc{summary: PlayerSummary{PlayerID: pid, PlayerName: r.PlayerName}}
			accs[pid] = a
			order = append(order, pid)
		}
		a.summary.EventsPlayed++
		a.summary.Points += r.Points
		a.prSum += r.EventPR
		a.prCount++
		if r.Rank == 1 {
			a.summary.Wins++
		}
		if r.Rank >= 1 && r.Rank <= 3 {
			a.summary.Podiums++
		}
		if r.Rank >= 1 && r.Rank <= 10 {
			a.summary.Top10s++
		}
	}

	board := make([]PlayerSummary, 0, len(order))
	for _, pid := range order {
		a := accs[pid]
		a.summary.PrettyRating = prettyRating(a.prSum, a.prCount)
		board = append(board, a.summary)
	}

	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Points != board[j].Points {
			return board[i].Points > board[j].Points
		}
		return board[i].Wins > board[j].Wins
	})
	return board
}

// prettyRating is the mean of per-event rating contributions, rounded to the
// nearest integer half-to-even. Zero contributions rate zero.
func prettyRating(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(sum) / float64(count)))
}
