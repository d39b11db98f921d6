package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// captainsConcurrency caps concurrent picks requests so a big league
// does not hammer the API
const captainsConcurrency = 8

var captainsGameweek int64

var leagueCmd = &cobra.Command{
	Use:   "league",
	Short: "League standings and stats",
}

var leagueClassicCmd = &cobra.Command{
	Use:   "classic <league-id>",
	Short: "Show classic league standings",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeagueClassic,
}

var leagueH2HCmd = &cobra.Command{
	Use:   "h2h <league-id>",
	Short: "Show head-to-head league matches",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeagueH2H,
}

var leagueCaptainsCmd = &cobra.Command{
	Use:   "captains <league-id>",
	Short: "Show the most captained players in a league",
	Long: `Show which players the managers of a classic league captained this
gameweek, fetched concurrently across the league's first standings page.`,
	Args: cobra.ExactArgs(1),
	RunE: runLeagueCaptains,
}

func init() {
	leagueCaptainsCmd.Flags().Int64VarP(&captainsGameweek, "gameweek", "g", 0, "gameweek number (defaults to the current gameweek)")

	leagueCmd.AddCommand(leagueClassicCmd)
	leagueCmd.AddCommand(leagueH2HCmd)
	leagueCmd.AddCommand(leagueCaptainsCmd)
	rootCmd.AddCommand(leagueCmd)
}

func parseLeagueID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid league ID '%s'", arg)
	}
	return id, nil
}

func runLeagueClassic(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	leagueID, err := parseLeagueID(args[0])
	if err != nil {
		return err
	}

	league, err := client.GetClassicLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("failed to fetch league %d: %w", leagueID, err)
	}

	standings := league.Standings.Results
	if len(standings) == 0 {
		fmt.Println("No ranked entries in this league yet.")
		return nil
	}

	fmt.Printf("\n%s\n", league.League.Name)
	fmt.Printf("%-5s %-2s %-24s %-20s %5s %6s\n", "RANK", "", "TEAM", "MANAGER", "GW", "TOTAL")
	fmt.Println(strings.Repeat("━", 68))

	for _, standing := range standings {
		movement := " "
		switch {
		case standing.LastRank > 0 && standing.Rank < standing.LastRank:
			movement = "↑"
		case standing.LastRank > 0 && standing.Rank > standing.LastRank:
			movement = "↓"
		}

		fmt.Printf("%-5d %-2s %-24s %-20s %5d %6d\n",
			standing.Rank,
			movement,
			standing.EntryName,
			standing.PlayerName,
			standing.EventTotal,
			standing.Total,
		)
	}

	if league.Standings.HasNext {
		fmt.Printf("\nShowing page %d, more entries follow.\n", league.Standings.Page)
	}

	return nil
}

func runLeagueH2H(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	leagueID, err := parseLeagueID(args[0])
	if err != nil {
		return err
	}

	league, err := client.GetH2HLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("failed to fetch league %d: %w", leagueID, err)
	}

	if len(league.Results) == 0 {
		fmt.Println("No head-to-head matches in this league yet.")
		return nil
	}

	fmt.Printf("\nFound %d matches:\n", len(league.Results))
	fmt.Printf("%-3s %-24s %-9s %-24s\n", "GW", "HOME", "SCORE", "AWAY")
	fmt.Println(strings.Repeat("━", 64))

	for _, match := range league.Results {
		if match.IsBye {
			fmt.Printf("%-3d %-24s %-9s\n", match.Event, match.Entry1Name, "bye")
			continue
		}

		fmt.Printf("%-3d %-24s %3d - %-3d %-24s\n",
			match.Event,
			match.Entry1Name,
			match.Entry1Points,
			match.Entry2Points,
			match.Entry2Name,
		)
	}

	if league.HasNext {
		fmt.Printf("\nShowing page %d, more matches follow.\n", league.Page)
	}

	return nil
}

func runLeagueCaptains(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	leagueID, err := parseLeagueID(args[0])
	if err != nil {
		return err
	}

	league, err := client.GetClassicLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("failed to fetch league %d: %w", leagueID, err)
	}

	standings := league.Standings.Results
	if len(standings) == 0 {
		fmt.Println("No ranked entries in this league yet.")
		return nil
	}

	gameweekID := captainsGameweek
	if gameweekID == 0 {
		gameweek, err := currentGameweek(ctx)
		if err != nil {
			return err
		}
		gameweekID = gameweek.ID
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(captainsConcurrency)

	var (
		mu     sync.Mutex
		counts = make(map[int64]int)
		failed int
	)

	for _, standing := range standings {
		g.Go(func() error {
			picks, err := client.GetUserPicks(gctx, standing.Entry, gameweekID)
			if err != nil {
				logger.Warn().
					Err(err).
					Int64("entry", standing.Entry).
					Str("manager", standing.PlayerName).
					Msg("Failed to fetch picks")
				mu.Lock()
				failed++
				mu.Unlock()
				// Keep counting the entries that did resolve
				return nil
			}

			for _, pick := range picks.Picks {
				if pick.IsCaptain {
					mu.Lock()
					counts[pick.Element]++
					mu.Unlock()
					break
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Println("No captain picks could be fetched for this league.")
		return nil
	}

	names, err := playerNames(ctx)
	if err != nil {
		return err
	}

	type captainCount struct {
		element int64
		count   int
	}

	ranked := make([]captainCount, 0, len(counts))
	for element, count := range counts {
		ranked = append(ranked, captainCount{element: element, count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	fetched := len(standings) - failed

	fmt.Printf("\nGameweek %d captains across %d managers in %s:\n", gameweekID, fetched, league.League.Name)
	fmt.Println(strings.Repeat("━", 48))

	for _, entry := range ranked {
		name := names[entry.element]
		if name == "" {
			name = fmt.Sprintf("#%d", entry.element)
		}

		share := float64(entry.count) / float64(fetched) * 100
		fmt.Printf("%4d (%5.1f%%)  %s\n", entry.count, share, name)
	}

	if failed > 0 {
		fmt.Printf("\n⚠️  %d entries could not be fetched.\n", failed)
	}

	return nil
}
