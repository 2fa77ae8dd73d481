package league

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/fairwayleague/league-data/internal/cache"
)

// Store exposes the query surface over the six cached tables. Each query
// takes an immutable snapshot from the caches involved and reduces it with
// the pure aggregators in this package; same selector plus same underlying
// data always yields the same result.
//
// The caches are fully independent: a query may observe one table freshly
// reloaded and another stale, which is acceptable.
type Store struct {
	logger *slog.Logger

	results       *cache.File[[]ResultRow]
	teams         *cache.File[map[int]Entity]
	teamMatches   *cache.File[[]MatchRecord]
	players       *cache.File[map[int]Entity]
	playerMatches *cache.File[[]MatchRecord]
	assignments   *cache.File[[]TeamAssignment]
}

// NewStore creates a Store over the table files in dataDir. Nothing is read
// until the first query.
func NewStore(dataDir string, logger *slog.Logger) *Store {
	return &Store{
		logger:        logger,
		results:       cache.NewFile(filepath.Join(dataDir, ResultsFile), LoadResults),
		teams:         cache.NewFile(filepath.Join(dataDir, TeamsFile), logged(logger, "2v2_teams", LoadTeams)),
		teamMatches:   cache.NewFile(filepath.Join(dataDir, TeamMatchesFile), LoadMatches),
		players:       cache.NewFile(filepath.Join(dataDir, PlayersFile), logged(logger, "1v1_players", LoadPlayers)),
		playerMatches: cache.NewFile(filepath.Join(dataDir, PlayerMatchesFile), LoadMatches),
		assignments:   cache.NewFile(filepath.Join(dataDir, AssignmentsFile), logged(logger, "team_assignments", LoadAssignments)),
	}
}

// --------------------------------------------------------------------------
// Season / tier discovery
// --------------------------------------------------------------------------

// Seasons lists the seasons present in the results table, ascending.
func (s *Store) Seasons() []int {
	return Seasons(s.results.Get())
}

// SeasonTiers lists the tiers recorded for a season.
func (s *Store) SeasonTiers(season int) ([]string, error) {
	rows := s.results.Get()
	if !slices.Contains(Seasons(rows), season) {
		return nil, fmt.Errorf("season %d: %w", season, ErrNotFound)
	}
	return TiersPresent(rows, season), nil
}

// --------------------------------------------------------------------------
// Society queries
// --------------------------------------------------------------------------

// Leaderboard returns the ranked season leaderboard, optionally filtered to
// a single tier. Unknown seasons and unknown tiers are not-found errors,
// distinct from a known season with no rows in scope.
func (s *Store) Leaderboard(season int, tier string) ([]PlayerSummary, error) {
	rows := s.results.Get()
	if !slices.Contains(Seasons(rows), season) {
		return nil, fmt.Errorf("season %d: %w", season, ErrNotFound)
	}
	if tier != "" && !slices.Contains(TiersPresent(rows, season), tier) {
		return nil, fmt.Errorf("season %d tier %q: %w", season, tier, ErrNotFound)
	}
	return BuildLeaderboard(rows, season, tier), nil
}

// Event returns one event's detail page data.
func (s *Store) Event(eventID string) (EventDetail, error) {
	detail, ok := BuildEventDetail(s.results.Get(), eventID)
	if !ok {
		return EventDetail{}, fmt.Errorf("event %q: %w", eventID, ErrNotFound)
	}
	return detail, nil
}

// PlayerHistory returns a player's chronological history and per-season
// summaries.
func (s *Store) PlayerHistory(playerID int) (PlayerHistory, error) {
	h, ok := BuildPlayerHistory(s.results.Get(), playerID)
	if !ok {
		return PlayerHistory{}, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
	}
	return h, nil
}

// SocietyPlayers lists every distinct society player.
func (s *Store) SocietyPlayers() []PlayerRef {
	return DistinctPlayers(s.results.Get())
}

// SearchPlayers fuzzy-searches society players by name.
func (s *Store) SearchPlayers(query string) []PlayerRef {
	return SearchPlayers(s.results.Get(), query)
}

// SocietyResults returns the season/tier event-summary overview.
func (s *Store) SocietyResults() []SeasonResults {
	return BuildSocietyResults(s.results.Get())
}

// HeadToHead compares two players by name across all events.
func (s *Store) HeadToHead(name1, name2 string) HeadToHead {
	return CompareHeadToHead(s.results.Get(), name1, name2)
}

// --------------------------------------------------------------------------
// Pairwise bracket queries (1v1 / 2v2)
// --------------------------------------------------------------------------

func (s *Store) bracket(mode Mode) (map[int]Entity, []MatchRecord, error) {
	switch mode {
	case Mode1v1:
		return s.players.Get(), s.playerMatches.Get(), nil
	case Mode2v2:
		return s.teams.Get(), s.teamMatches.Get(), nil
	default:
		return nil, nil, fmt.Errorf("mode %q: %w", mode, ErrNotFound)
	}
}

// BracketConferences lists a bracket's conference labels, ascending.
func (s *Store) BracketConferences(mode Mode) ([]string, error) {
	entities, _, err := s.bracket(mode)
	if err != nil {
		return nil, err
	}
	return Conferences(entities), nil
}

// PairwiseStandings returns one conference's standings for a bracket.
func (s *Store) PairwiseStandings(mode Mode, conference string) ([]EntitySummary, error) {
	entities, matches, err := s.bracket(mode)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(Conferences(entities), conference) {
		return nil, fmt.Errorf("conference %q: %w", conference, ErrNotFound)
	}
	return BuildPairwiseStandings(entities, matches, conference), nil
}

// Fixtures returns a bracket's matches grouped by conference and phase.
func (s *Store) Fixtures(mode Mode) ([]ConferenceFixtures, error) {
	entities, matches, err := s.bracket(mode)
	if err != nil {
		return nil, err
	}
	return GroupFixtures(entities, matches), nil
}

// Entities lists a bracket's roster sorted by name.
func (s *Store) Entities(mode Mode) ([]Entity, error) {
	entities, _, err := s.bracket(mode)
	if err != nil {
		return nil, err
	}
	list := make([]Entity, 0, len(entities))
	for _, e := range entities {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

// EntityDetail returns the profile view of a 1v1 player or 2v2 team.
func (s *Store) EntityDetail(mode Mode, id int) (EntityDetail, error) {
	entities, matches, err := s.bracket(mode)
	if err != nil {
		return EntityDetail{}, err
	}
	detail, ok := BuildEntityDetail(entities, matches, id)
	if !ok {
		return EntityDetail{}, fmt.Errorf("%s entity %d: %w", mode, id, ErrNotFound)
	}
	return detail, nil
}

// --------------------------------------------------------------------------
// Team standings queries
// --------------------------------------------------------------------------

func (s *Store) seasonAssignments(season int) ([]ResultRow, []TeamAssignment, error) {
	assignments := s.assignments.Get()
	found := false
	for _, a := range assignments {
		if a.Season == season {
			found = true
			break
		}
	}
	if !found {
		return nil, nil, fmt.Errorf("season %d: %w", season, ErrNotFound)
	}
	return s.results.Get(), assignments, nil
}

// TeamStandings returns the season's team table.
func (s *Store) TeamStandings(season int) ([]TeamStanding, error) {
	rows, assignments, err := s.seasonAssignments(season)
	if err != nil {
		return nil, err
	}
	return ComputeTeamStandings(rows, assignments, season), nil
}

// TeamDetail returns one team's season view.
func (s *Store) TeamDetail(teamID, season int) (TeamDetail, error) {
	rows, assignments, err := s.seasonAssignments(season)
	if err != nil {
		return TeamDetail{}, err
	}
	detail, ok := ComputeTeamDetail(rows, assignments, season, teamID)
	if !ok {
		return TeamDetail{}, fmt.Errorf("team %d season %d: %w", teamID, season, ErrNotFound)
	}
	return detail, nil
}

// --------------------------------------------------------------------------
// Data status
// --------------------------------------------------------------------------

// TableStatus describes one cached table for health checks and the CLI.
type TableStatus struct {
	Table    string    `json:"table"`
	Path     string    `json:"path"`
	Rows     int       `json:"rows"`
	Loaded   bool      `json:"loaded"`
	LoadedAt time.Time `json:"loaded_at,omitempty"`
}

// Status loads every table and reports per-table row counts and cache
// state.
func (s *Store) Status() []TableStatus {
	return []TableStatus{
		tableStatus("results", s.results, len(s.results.Get())),
		tableStatus("2v2_teams", s.teams, len(s.teams.Get())),
		tableStatus("2v2_matches", s.teamMatches, len(s.teamMatches.Get())),
		tableStatus("1v1_players", s.players, len(s.players.Get())),
		tableStatus("1v1_matches", s.playerMatches, len(s.playerMatches.Get())),
		tableStatus("team_assignments", s.assignments, len(s.assignments.Get())),
	}
}

func tableStatus[T any](name string, c *cache.File[T], rows int) TableStatus {
	loaded, mtime := c.Info()
	return TableStatus{
		Table:    name,
		Path:     c.Path(),
		Rows:     rows,
		Loaded:   loaded,
		LoadedAt: mtime,
	}
}
