// Command league is the Fairway League data CLI. It answers the same
// questions as the API, straight from the CSV files, without a server.
//
// Usage:
//
//	league check
//	league leaderboard --season 3 --tier Championship
//	league standings --season 3
//	league bracket --mode 1v1 --conference A
//	league head-to-head --player1 "Tom Morris" --player2 "Harry Vardon"
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fairwayleague/league-data/internal/config"
	"github.com/fairwayleague/league-data/internal/league"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "league",
		Short: "Fairway League data CLI",
	}

	root.AddCommand(checkCmd())
	root.AddCommand(leaderboardCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(bracketCmd())
	root.AddCommand(headToHeadCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// check command
// --------------------------------------------------------------------------

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every table file loads and report row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(store *league.Store) error {
				w := newTable()
				fmt.Fprintln(w, "TABLE\tPATH\tROWS\tLOADED")
				for _, t := range store.Status() {
					fmt.Fprintf(w, "%s\t%s\t%d\t%v\n", t.Table, t.Path, t.Rows, t.Loaded)
				}
				return w.Flush()
			})
		},
	}
}

// --------------------------------------------------------------------------
// leaderboard command
// --------------------------------------------------------------------------

func leaderboardCmd() *cobra.Command {
	var season int
	var tier string
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the season leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(store *league.Store) error {
				if season == 0 {
					seasons := store.Seasons()
					if len(seasons) == 0 {
						return fmt.Errorf("no seasons recorded")
					}
					season = seasons[len(seasons)-1]
				}
				board, err := store.Leaderboard(season, tier)
				if err != nil {
					return err
				}
				w := newTable()
				fmt.Fprintln(w, "RANK\tPLAYER\tEVENTS\tPOINTS\tWINS\tPODIUMS\tTOP10\tPRETTY")
				for i, p := range board {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
						i+1, p.PlayerName, p.EventsPlayed, p.Points, p.Wins, p.Podiums, p.Top10s, p.PrettyRating)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season number (default latest)")
	cmd.Flags().StringVar(&tier, "tier", "", "Restrict to one tier")
	return cmd
}

// --------------------------------------------------------------------------
// standings command
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	var season int
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print the season team competition table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(store *league.Store) error {
				standings, err := store.TeamStandings(season)
				if err != nil {
					return err
				}
				w := newTable()
				fmt.Fprintln(w, "RANK\tTEAM\tPLAYED\tW\tT\tL\tPOINTS")
				for i, t := range standings {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%.1f\n",
						i+1, t.TeamName, t.MatchWins+t.MatchLosses+t.MatchTies,
						t.MatchWins, t.MatchTies, t.MatchLosses, t.Points)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 1, "Season number")
	return cmd
}

// --------------------------------------------------------------------------
// bracket command
// --------------------------------------------------------------------------

func bracketCmd() *cobra.Command {
	var mode, conference string
	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Print knockout bracket standings for one conference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(store *league.Store) error {
				m := league.Mode(mode)
				if conference == "" {
					conferences, err := store.BracketConferences(m)
					if err != nil {
						return err
					}
					if len(conferences) == 0 {
						return fmt.Errorf("bracket %s has no conferences", mode)
					}
					conference = conferences[0]
				}
				standings, err := store.PairwiseStandings(m, conference)
				if err != nil {
					return err
				}
				w := newTable()
				fmt.Fprintln(w, "RANK\tNAME\tW\tL\tDIFF")
				for i, e := range standings {
					fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%+d\n",
						i+1, e.Name, e.Wins, e.Losses, e.PointDiff)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "1v1", "Bracket mode (1v1 or 2v2)")
	cmd.Flags().StringVar(&conference, "conference", "", "Conference label (default first)")
	return cmd
}

// --------------------------------------------------------------------------
// head-to-head command
// --------------------------------------------------------------------------

func headToHeadCmd() *cobra.Command {
	var player1, player2 string
	cmd := &cobra.Command{
		Use:   "head-to-head",
		Short: "Compare two players over shared events",
		RunE: func(cmd *cobra.Command, args []string) error {
			if player1 == "" || player2 == "" {
				return fmt.Errorf("--player1 and --player2 are required")
			}
			return runQuery(func(store *league.Store) error {
				h := store.HeadToHead(player1, player2)
				fmt.Printf("%s %d - %d %s (%d ties, %d events)\n",
					h.Player1, h.Wins1, h.Wins2, h.Player2, h.Ties, len(h.Events))
				w := newTable()
				fmt.Fprintln(w, "SEASON\tEVENT\tDATE\tSCORE1\tSCORE2")
				for _, e := range h.Events {
					fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n",
						e.Season, e.EventID, e.EventDate, e.Score1, e.Score2)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&player1, "player1", "", "First player name")
	cmd.Flags().StringVar(&player2, "player2", "", "Second player name")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// runQuery handles config loading and store construction.
func runQuery(fn func(store *league.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return fn(league.NewStore(cfg.DataDir, logger))
}
