// Package league implements the society's aggregation and standings engine:
// typed table rows, the loaders that produce them, and the pure reducers
// that turn them into leaderboards, pairwise standings, team standings and
// head-to-head comparisons. All derived structures are built fresh per
// request; only raw rows are cached.
package league

import "errors"

// ErrNotFound reports an unknown selector (season, tier, conference, player,
// team or event). It is distinct from a known selector with no matching
// rows, which yields an empty result and a nil error.
var ErrNotFound = errors.New("not found")

// Table file names. Column names and the "Avg" sentinel are part of the wire
// format shared with historical data exports and must not change.
const (
	ResultsFile       = "league_data.csv"
	TeamsFile         = "2v2_teams.csv"
	TeamMatchesFile   = "2v2_matches.csv"
	PlayersFile       = "1v1_players.csv"
	PlayerMatchesFile = "1v1_matches.csv"
	AssignmentsFile   = "team_assignments.csv"
)

// SocietyAverageSentinel marks an assignment whose opponent is the synthetic
// "society average" rather than a named player.
const SocietyAverageSentinel = "Avg"

// Mode selects which pairwise bracket a query addresses.
type Mode string

const (
	Mode1v1 Mode = "1v1"
	Mode2v2 Mode = "2v2"
)

// --------------------------------------------------------------------------
// Raw rows
// --------------------------------------------------------------------------

// ResultRow is one player-event entry in the main tournament table.
// Score is golf-style: lower is strictly better. Rank 1 is the event winner.
// EventDate is a lexically sortable date string. All rows sharing an EventID
// share the same Season and EventDate.
type ResultRow struct {
	PlayerID   *int   `json:"player_id"`
	PlayerName string `json:"player_name"`
	EventID    string `json:"event_id"`
	EventDate  string `json:"event_date"`
	Score      int    `json:"score"`
	Rank       int    `json:"rank"`
	Points     int    `json:"points"`
	EventPR    int    `json:"event_pr"`
	Season     int    `json:"season"`
	Tier       string `json:"tier"`
}

// MatchRecord is one 1v1 or 2v2 bracket fixture. A nil PointDiff means the
// fixture has not been played yet; a nil Date sorts after dated matches.
type MatchRecord struct {
	MatchID   int     `json:"match_id"`
	Season    int     `json:"season"`
	Phase     string  `json:"phase"`
	Date      *string `json:"date"`
	WinnerID  int     `json:"winner_id"`
	LoserID   int     `json:"loser_id"`
	PointDiff *int    `json:"point_diff"`
}

// Entity is a pairwise-bracket participant: a 1v1 player or a 2v2 team.
// Players is populated for teams only.
type Entity struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Conference string   `json:"conference"`
	Players    []string `json:"players,omitempty"`
}

// Opponent is the tagged opponent of a team assignment: either a named
// player or the society average.
type Opponent struct {
	PlayerID       int
	SocietyAverage bool
}

// TeamAssignment pairs a player with a team and an opponent for one event.
// Player-vs-player fixtures are recorded twice, once from each side; the
// reducer processes each pair exactly once, keyed by the smaller player id.
type TeamAssignment struct {
	PlayerID     int
	TeamID       int
	TeamName     string
	Opponent     Opponent
	TeamOpponent *int
	Event        string
	Season       int
}

// --------------------------------------------------------------------------
// Derived results (ephemeral, owned by the request that computed them)
// --------------------------------------------------------------------------

// PlayerSummary is one leaderboard row.
type PlayerSummary struct {
	PlayerID     int    `json:"player_id"`
	PlayerName   string `json:"player_name"`
	Points       int    `json:"points"`
	Wins         int    `json:"wins"`
	Podiums      int    `json:"podiums"`
	Top10s       int    `json:"top10s"`
	EventsPlayed int    `json:"events_played"`
	PrettyRating int    `json:"prettyrating"`
}

// EntitySummary is one pairwise standings row. Only completed matches
// (present point differential) contribute.
type EntitySummary struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	MatchesPlayed int    `json:"matches_played"`
	PointDiff     int    `json:"point_diff"`
}

// TeamStanding carries both layers of a team's season record: player-match
// wins/losses/ties with cumulative points (1.0 / 0.5 / 0), and team-level
// match results classified from per-event point subtotals.
type TeamStanding struct {
	TeamID      int     `json:"team_id"`
	TeamName    string  `json:"team_name"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	Points      float64 `json:"points"`
	MatchWins   int     `json:"match_wins"`
	MatchLosses int     `json:"match_losses"`
	MatchTies   int     `json:"match_ties"`
}

// RosterMember is one player on a team's season roster.
type RosterMember struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// TeamEventResult is a team's aggregate for one event: the point subtotal
// its players earned and the team-level outcome classified from it.
type TeamEventResult struct {
	Event     string  `json:"event"`
	EventDate string  `json:"event_date"`
	Points    float64 `json:"points"`
	Outcome   string  `json:"outcome"` // "win", "tie" or "loss"
}

// TeamDetail is the full per-season view of one team.
type TeamDetail struct {
	TeamID   int               `json:"team_id"`
	TeamName string            `json:"team_name"`
	Season   int               `json:"season"`
	Roster   []RosterMember    `json:"roster"`
	Record   TeamStanding      `json:"record"`
	Events   []TeamEventResult `json:"events"`
}

// HeadToHeadEvent is one event both compared players entered. Winner is 1
// or 2 for the corresponding player, 0 for a tie.
type HeadToHeadEvent struct {
	Season    int    `json:"season"`
	EventID   string `json:"event_id"`
	EventDate string `json:"event_date"`
	Score1    int    `json:"score1"`
	Score2    int    `json:"score2"`
	Winner    int    `json:"winner"`
}

// HeadToHead summarises every event two players both entered.
type HeadToHead struct {
	Player1 string            `json:"player1"`
	Player2 string            `json:"player2"`
	Wins1   int               `json:"wins1"`
	Wins2   int               `json:"wins2"`
	Ties    int               `json:"ties"`
	Events  []HeadToHeadEvent `json:"events"`
}

// SeasonSummary is a player's per-season rollup on their profile.
type SeasonSummary struct {
	Season       int      `json:"season"`
	Tiers        []string `json:"tiers"`
	PrettyRating int      `json:"pretty_rating"`
}

// PlayerHistory is a player's chronological event list plus per-season
// summaries.
type PlayerHistory struct {
	PlayerID   int             `json:"player_id"`
	PlayerName string          `json:"player_name"`
	TotalWins  int             `json:"total_wins"`
	Events     []ResultRow     `json:"events"`
	Seasons    []SeasonSummary `json:"seasons"`
}

// PlayerRef identifies a society player in listings and search results.
type PlayerRef struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// EventTierGroup groups an event's participants by tier, ordered by rank.
type EventTierGroup struct {
	Tier         string      `json:"tier"`
	Participants []ResultRow `json:"participants"`
}

// EventDetail is the full view of one event.
type EventDetail struct {
	EventID   string           `json:"event_id"`
	EventDate string           `json:"event_date"`
	Season    int              `json:"season"`
	Tiers     []EventTierGroup `json:"tiers"`
}

// EventSummary collapses one event to its winner and best score.
type EventSummary struct {
	EventID   string `json:"event_id"`
	EventDate string `json:"event_date"`
	Winner    string `json:"winner"`
	BestScore int    `json:"best_score"`
}

// TierResults lists a tier's event summaries within a season.
type TierResults struct {
	Tier   string         `json:"tier"`
	Events []EventSummary `json:"events"`
}

// SeasonResults is the society results overview for one season.
type SeasonResults struct {
	Season int           `json:"season"`
	Tiers  []TierResults `json:"tiers"`
}

// Fixture is a match decorated with resolved entity names for display.
type Fixture struct {
	MatchID    int     `json:"match_id"`
	Season     int     `json:"season"`
	Phase      string  `json:"phase"`
	Date       *string `json:"date"`
	WinnerID   int     `json:"winner_id"`
	WinnerName string  `json:"winner_name"`
	LoserID    int     `json:"loser_id"`
	LoserName  string  `json:"loser_name"`
	PointDiff  *int    `json:"point_diff"`
}

// PhaseGroup holds a bracket phase's fixtures, newest first.
type PhaseGroup struct {
	Phase    string    `json:"phase"`
	Fixtures []Fixture `json:"fixtures"`
}

// ConferenceFixtures groups fixtures by conference and then phase.
type ConferenceFixtures struct {
	Conference string       `json:"conference"`
	Phases     []PhaseGroup `json:"phases"`
}

// EntityMatch is a fixture seen from one entity's perspective.
type EntityMatch struct {
	Fixture
	Result string `json:"result"` // "Win" or "Loss"
}

// EntityDetail is the profile view of a 1v1 player or 2v2 team: identity,
// completed-match record and full match history.
type EntityDetail struct {
	Entity
	Record  EntitySummary `json:"record"`
	Matches []EntityMatch `json:"matches"`
}

// PhaseOrder is the canonical bracket phase ordering used on fixture pages.
var PhaseOrder = []string{
	"Group Stage - Round 1",
	"Group Stage - Round 2",
	"Group Stage - Round 3",
	"Group Stage - Round 4",
	"Quarterfinals",
	"Semi-Finals",
	"Finals",
}
