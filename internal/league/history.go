package league

import "sort"

// BuildPlayerHistory collects a player's full event history, oldest first,
// plus a per-season rollup (tiers played, pretty rating). The second return
// value is false when the player has no rows at all.
func BuildPlayerHistory(rows []ResultRow, playerID int) (PlayerHistory, bool) {
	var events []ResultRow
	for _, r := range rows {
		if r.PlayerID != nil && *r.PlayerID == playerID {
			events = append(events, r)
		}
	}
	if len(events) == 0 {
		return PlayerHistory{}, false
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].EventDate < events[j].EventDate })

	type seasonAcc struct {
		tiers   map[string]bool
		prSum   int
		prCount int
	}
	bySeason := make(map[int]*seasonAcc)
	h := PlayerHistory{
		PlayerID:   playerID,
		PlayerName: events[0].PlayerName,
		Events:     events,
	}
	for _, r := range events {
		if r.Rank == 1 {
			h.TotalWins++
		}
		a, ok := bySeason[r.Season]
		if !ok {
			a = &seasonAcc{tiers: make(map[string]bool)}
			bySeason[r.Season] = a
		}
		a.tiers[r.Tier] = true
		a.prSum += r.EventPR
		a.prCount++
	}

	for season, a := range bySeason {
		tiers := make([]string, 0, len(a.tiers))
		for t := range a.tiers {
			tiers = append(tiers, t)
		}
		sort.Strings(tiers)
		h.Seasons = append(h.Seasons, SeasonSummary{
			Season:       season,
			Tiers:        tiers,
			PrettyRating: prettyRating(a.prSum, a.prCount),
		})
	}
	sort.Slice(h.Seasons, func(i, j int) bool { return h.Seasons[i].Season < h.Seasons[j].Season })
	return h, true
}
