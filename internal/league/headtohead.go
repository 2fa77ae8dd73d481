package league

import (
	"sort"
	"strings"
)

// CompareHeadToHead tallies every event both named players entered. Names
// match case-insensitively against the full row set; a name matching zero
// rows is not an error, it simply yields zero common events.
//
// An event is comparable only when each player has exactly one row for the
// (season, event) key. Lower score wins; equal scores record a tie.
func CompareHeadToHead(rows []ResultRow, name1, name2 string) HeadToHead {
	h2h := HeadToHead{Player1: strings.TrimSpace(name1), Player2: strings.TrimSpace(name2)}

	type key struct {
		season int
		event  string
	}
	rows1 := make(map[key][]ResultRow)
	rows2 := make(map[key][]ResultRow)
	for _, r := range rows {
		k := key{r.Season, r.EventID}
		if strings.EqualFold(r.PlayerName, h2h.Player1) {
			rows1[k] = append(rows1[k], r)
		}
		if strings.EqualFold(r.PlayerName, h2h.Player2) {
			rows2[k] = append(rows2[k], r)
		}
	}

	for k, entries1 := range rows1 {
		entries2, ok := rows2[k]
		if !ok || len(entries1) != 1 || len(entries2) != 1 {
			continue
		}
		ev := HeadToHeadEvent{
			Season:    k.season,
			EventID:   k.event,
			EventDate: entries1[0].EventDate,
			Score1:    entries1[0].Score,
			Score2:    entries2[0].Score,
		}
		switch {
		case ev.Score1 < ev.Score2:
			ev.Winner = 1
			h2h.Wins1++
		case ev.Score2 < ev.Score1:
			ev.Winner = 2
			h2h.Wins2++
		default:
			h2h.Ties++
		}
		h2h.Events = append(h2h.Events, ev)
	}

	sort.Slice(h2h.Events, func(i, j int) bool {
		if h2h.Events[i].Season != h2h.Events[j].Season {
			return h2h.Events[i].Season < h2h.Events[j].Season
		}
		return h2h.Events[i].EventDate < h2h.Events[j].EventDate
	})
	return h2h
}
