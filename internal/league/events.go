package league

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BuildEventDetail lists an event's participants sorted by rank and grouped
// by tier. The second return value is false for an unknown event id.
func BuildEventDetail(rows []ResultRow, eventID string) (EventDetail, bool) {
	var entries []ResultRow
	for _, r := range rows {
		if r.EventID == eventID {
			entries = append(entries, r)
		}
	}
	if len(entries) == 0 {
		return EventDetail{}, false
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Rank < entries[j].Rank })

	detail := EventDetail{
		EventID:   eventID,
		EventDate: entries[0].EventDate,
		Season:    entries[0].Season,
	}
	index := make(map[string]int)
	for _, r := range entries {
		tier := r.Tier
		if tier == "" {
			tier = "Unclassified"
		}
		i, ok := index[tier]
		if !ok {
			i = len(detail.Tiers)
			index[tier] = i
			detail.Tiers = append(detail.Tiers, EventTierGroup{Tier: tier})
		}
		detail.Tiers[i].Participants = append(detail.Tiers[i].Participants, r)
	}
	return detail, true
}

// BuildSocietyResults collapses the whole result set to per-season,
// per-tier event summaries: each event reduced to its winner (rank 1) and
// best score, events sorted by date.
func BuildSocietyResults(rows []ResultRow) []SeasonResults {
	type eventAcc struct {
		summary EventSummary
		best    ResultRow
		hasBest bool
	}
	type tierAcc struct {
		events map[string]*eventAcc
		order  []string
	}
	seasons := make(map[int]map[string]*tierAcc)
	for _, r := range rows {
		tiers, ok := seasons[r.Season]
		if !ok {
			tiers = make(map[string]*tierAcc)
			seasons[r.Season] = tiers
		}
		ta, ok := tiers[r.Tier]
		if !ok {
			ta = &tierAcc{events: make(map[string]*eventAcc)}
			tiers[r.Tier] = ta
		}
		ea, ok := ta.events[r.EventID]
		if !ok {
			ea = &eventAcc{summary: EventSummary{EventID: r.EventID, EventDate: r.EventDate}}
			ta.events[r.EventID] = ea
			ta.order = append(ta.order, r.EventID)
		}
		if !ea.hasBest || r.Rank < ea.best.Rank {
			ea.best = r
			ea.hasBest = true
		}
	}

	out := make([]SeasonResults, 0, len(seasons))
	for season, tiers := range seasons {
		sr := SeasonResults{Season: season}
		tierNames := make([]string, 0, len(tiers))
		for t := range tiers {
			tierNames = append(tierNames, t)
		}
		sort.Strings(tierNames)
		for _, t := range tierNames {
			ta := tiers[t]
			tr := TierResults{Tier: t}
			for _, evID := range ta.order {
				ea := ta.events[evID]
				ea.summary.Winner = ea.best.PlayerName
				ea.summary.BestScore = ea.best.Score
				tr.Events = append(tr.Events, ea.summary)
			}
			sort.SliceStable(tr.Events, func(i, j int) bool { return tr.Events[i].EventDate < tr.Events[j].EventDate })
			sr.Tiers = append(sr.Tiers, tr)
		}
		out = append(out, sr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

// DistinctPlayers lists every player with a present id, one entry each,
// sorted by name case-insensitively.
func DistinctPlayers(rows []ResultRow) []PlayerRef {
	names := make(map[int]string)
	for _, r := range rows {
		if r.PlayerID != nil {
			names[*r.PlayerID] = r.PlayerName
		}
	}
	players := make([]PlayerRef, 0, len(names))
	for pid, name := range names {
		players = append(players, PlayerRef{PlayerID: pid, PlayerName: name})
	}
	sort.Slice(players, func(i, j int) bool {
		return strings.ToLower(players[i].PlayerName) < strings.ToLower(players[j].PlayerName)
	})
	return players
}

// SearchPlayers fuzzy-matches the query against distinct player names,
// best matches first. An empty query returns the full listing.
func SearchPlayers(rows []ResultRow, query string) []PlayerRef {
	players := DistinctPlayers(rows)
	query = strings.TrimSpace(query)
	if query == "" {
		return players
	}

	names := make([]string, len(players))
	byName := make(map[string]PlayerRef, len(players))
	for i, p := range players {
		names[i] = p.PlayerName
		byName[p.PlayerName] = p
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)
	out := make([]PlayerRef, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, byName[r.Target])
	}
	return out
}
