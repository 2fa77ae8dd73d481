package league

import "sort"

// Team match scoring: a player-match win is worth 1 point, a tie 0.5, a
// loss 0. Team-level thresholds depend on the season's roster size.
const (
	winPoints = 1.0
	tiePoints = 0.5
)

// seasonThresholds returns the per-event point totals a team needs for a
// team-level win or tie. Season 2 played with rosters of 4 (win at 2.5, tie
// at 2.0); season 3 onward plays with rosters of 5 (win at 3.0, tie at 2.5).
func seasonThresholds(season int) (win, tie float64) {
	if season >= 3 {
		return 3.0, 2.5
	}
	return 2.5, 2.0
}

// floorDiv is integer division rounding toward negative infinity. The
// society average has always been computed this way; keep it exact so
// recomputed standings match historical ones.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

type outcome int

const (
	outcomeLoss outcome = iota
	outcomeTie
	outcomeWin
)

// teamAccount accumulates one team's season while the reducer walks the
// assignment table.
type teamAccount struct {
	standing    TeamStanding
	eventPoints map[string]float64
	events      []string // distinct events with assignments, in input order
	eventSeen   map[string]bool
	roster      []int // distinct assigned players, in input order
	rosterSeen  map[int]bool
}

// seasonComputation holds everything the standings and team-detail views
// derive from: per-event score lookups, society averages, and per-team
// accounts.
type seasonComputation struct {
	accounts  map[int]*teamAccount
	teamOrder []int

	scores      map[string]map[int]int
	eventAvg    map[string]int
	eventPlayed map[string]bool
	eventDates  map[string]string
}

func (c *seasonComputation) account(teamID int, name string) *teamAccount {
	a, ok := c.accounts[teamID]
	if !ok {
		a = &teamAccount{
			standing:    TeamStanding{TeamID: teamID, TeamName: name},
			eventPoints: make(map[string]float64),
			eventSeen:   make(map[string]bool),
			rosterSeen:  make(map[int]bool),
		}
		c.accounts[teamID] = a
		c.teamOrder = append(c.teamOrder, teamID)
	}
	if a.standing.TeamName == "" {
		a.standing.TeamName = name
	}
	return a
}

func (a *teamAccount) touch(event string, playerID int) {
	if !a.eventSeen[event] {
		a.eventSeen[event] = true
		a.events = append(a.events, event)
	}
	if !a.rosterSeen[playerID] {
		a.rosterSeen[playerID] = true
		a.roster = append(a.roster, playerID)
	}
}

func (a *teamAccount) award(event string, o outcome) {
	switch o {
	case outcomeWin:
		a.standing.Wins++
		a.standing.Points += winPoints
		a.eventPoints[event] += winPoints
	case outcomeTie:
		a.standing.Ties++
		a.standing.Points += tiePoints
		a.eventPoints[event] += tiePoints
	case outcomeLoss:
		a.standing.Losses++
	}
}

// computeSeason resolves every fixture in a season's assignment table.
//
// Fixture semantics (lower score always wins):
//
//   - Society-average opponent: the player's score against the event's
//     floor(mean) of all recorded scores. Equality is a tie. A player with
//     no recorded score takes a loss against average. An event with zero
//     recorded scores has no average; those fixtures degrade to no result.
//   - Player opponent: recorded twice, once per side. The fixture is
//     resolved only while iterating the side with the numerically smaller
//     player id, so a pair is never counted twice regardless of row order.
//     One-sided scores win outright; two absent scores tie.
//
// The opposing team is credited through the opponent's reciprocal
// assignment; without one, no points can be attributed to that team.
func computeSeason(rows []ResultRow, assignments []TeamAssignment, season int) *seasonComputation {
	c := &seasonComputation{
		accounts:    make(map[int]*teamAccount),
		scores:      make(map[string]map[int]int),
		eventAvg:    make(map[string]int),
		eventPlayed: make(map[string]bool),
		eventDates:  make(map[string]string),
	}

	for _, r := range rows {
		if r.Season != season || r.PlayerID == nil {
			continue
		}
		ev := r.EventID
		if c.scores[ev] == nil {
			c.scores[ev] = make(map[int]int)
		}
		c.scores[ev][*r.PlayerID] = r.Score
		c.eventDates[ev] = r.EventDate
	}
	for ev, byPlayer := range c.scores {
		sum := 0
		for _, s := range byPlayer {
			sum += s
		}
		c.eventAvg[ev] = floorDiv(sum, len(byPlayer))
		c.eventPlayed[ev] = true
	}

	// Reciprocal assignment lookup by (event, player).
	byEventPlayer := make(map[string]map[int]TeamAssignment)
	for _, a := range assignments {
		if a.Season != season {
			continue
		}
		if byEventPlayer[a.Event] == nil {
			byEventPlayer[a.Event] = make(map[int]TeamAssignment)
		}
		byEventPlayer[a.Event][a.PlayerID] = a
	}

	for _, a := range assignments {
		if a.Season != season {
			continue
		}
		acc := c.account(a.TeamID, a.TeamName)
		acc.touch(a.Event, a.PlayerID)

		if a.Opponent.SocietyAverage {
			if !c.eventPlayed[a.Event] {
				continue // no entrants scored, fixture has no result
			}
			score, played := c.scores[a.Event][a.PlayerID]
			switch {
			case !played:
				acc.award(a.Event, outcomeLoss)
			case score < c.eventAvg[a.Event]:
				acc.award(a.Event, outcomeWin)
			case score == c.eventAvg[a.Event]:
				acc.award(a.Event, outcomeTie)
			default:
				acc.award(a.Event, outcomeLoss)
			}
			continue
		}

		oppID := a.Opponent.PlayerID
		if a.PlayerID >= oppID {
			continue // the smaller-id side resolves the pair
		}

		s1, p1 := c.scores[a.Event][a.PlayerID]
		s2, p2 := c.scores[a.Event][oppID]
		var mine, theirs outcome
		switch {
		case p1 && p2 && s1 < s2:
			mine, theirs = outcomeWin, outcomeLoss
		case p1 && p2 && s2 < s1:
			mine, theirs = outcomeLoss, outcomeWin
		case p1 && !p2:
			mine, theirs = outcomeWin, outcomeLoss
		case p2 && !p1:
			mine, theirs = outcomeLoss, outcomeWin
		default: // equal scores, or neither played
			mine, theirs = outcomeTie, outcomeTie
		}

		acc.award(a.Event, mine)
		if recip, ok := byEventPlayer[a.Event][oppID]; ok {
			oppAcc := c.account(recip.TeamID, recip.TeamName)
			oppAcc.touch(a.Event, recip.PlayerID)
			oppAcc.award(a.Event, theirs)
		}
	}

	return c
}

// classify fills the team-level match results from per-event subtotals.
// Only events that were actually played qualify; each yields exactly one
// win/tie/loss credit against the season thresholds.
func (c *seasonComputation) classify(a *teamAccount, season int) {
	winAt, tieAt := seasonThresholds(season)
	a.standing.MatchWins, a.standing.MatchTies, a.standing.MatchLosses = 0, 0, 0
	for _, ev := range a.events {
		if !c.eventPlayed[ev] {
			continue
		}
		switch pts := a.eventPoints[ev]; {
		case pts >= winAt:
			a.standing.MatchWins++
		case pts >= tieAt:
			a.standing.MatchTies++
		default:
			a.standing.MatchLosses++
		}
	}
}

// ComputeTeamStandings derives the season's team table. Teams appear only
// when they have at least one assignment in the season. Ranking is
// cumulative points descending, then player-match wins descending.
func ComputeTeamStandings(rows []ResultRow, assignments []TeamAssignment, season int) []TeamStanding {
	c := computeSeason(rows, assignments, season)

	table := make([]TeamStanding, 0, len(c.teamOrder))
	for _, teamID := range c.teamOrder {
		a := c.accounts[teamID]
		c.classify(a, season)
		table = append(table, a.standing)
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		return table[i].Wins > table[j].Wins
	})
	return table
}

// ComputeTeamDetail derives one team's season view: roster, per-event
// results and overall record. The second return value is false when the
// team has no assignment in the season.
func ComputeTeamDetail(rows []ResultRow, assignments []TeamAssignment, season, teamID int) (TeamDetail, bool) {
	c := computeSeason(rows, assignments, season)
	a, ok := c.accounts[teamID]
	if !ok {
		return TeamDetail{}, false
	}
	c.classify(a, season)

	names := make(map[int]string)
	for _, r := range rows {
		if r.PlayerID != nil && r.PlayerName != "" {
			names[*r.PlayerID] = r.PlayerName
		}
	}

	roster := make([]RosterMember, 0, len(a.roster))
	for _, pid := range a.roster {
		roster = append(roster, RosterMember{PlayerID: pid, PlayerName: names[pid]})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].PlayerID < roster[j].PlayerID })

	winAt, tieAt := seasonThresholds(season)
	events := make([]TeamEventResult, 0, len(a.events))
	for _, ev := range a.events {
		if !c.eventPlayed[ev] {
			continue
		}
		res := TeamEventResult{
			Event:     ev,
			EventDate: c.eventDates[ev],
			Points:    a.eventPoints[ev],
		}
		switch {
		case res.Points >= winAt:
			res.Outcome = "win"
		case res.Points >= tieAt:
			res.Outcome = "tie"
		default:
			res.Outcome = "loss"
		}
		events = append(events, res)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].EventDate < events[j].EventDate })

	return TeamDetail{
		TeamID:   teamID,
		TeamName: a.standing.TeamName,
		Season:   season,
		Roster:   roster,
		Record:   a.standing,
		Events:   events,
	}, true
}
