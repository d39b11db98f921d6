package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/AtomsForPeace/fpl-go/filter"
	"github.com/AtomsForPeace/fpl-go/fpl"
)

var (
	sortBy       string
	listLimit    int
	searchLimit  int
	positionFlag string
)

// matchThreshold is the minimum similarity score for a search hit
const matchThreshold = 0.7

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List and search players",
}

var playersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List players matching the filter criteria",
	RunE:  runPlayersList,
}

var playersSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search players by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlayersSearch,
}

func init() {
	playersListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression to apply")
	playersListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	playersListCmd.Flags().StringVar(&sortBy, "sort", "points", "sort by: points, price, form, selected")
	playersListCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum number of players to show (0 for all)")
	playersListCmd.Flags().StringVar(&positionFlag, "position", "", "only show one position: GKP, DEF, MID or FWD")

	playersSearchCmd.Flags().IntVar(&searchLimit, "limit", 5, "maximum number of results")

	playersCmd.AddCommand(playersListCmd)
	playersCmd.AddCommand(playersSearchCmd)
	rootCmd.AddCommand(playersCmd)
}

func runPlayersList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	players, err := client.GetAllPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch players: %w", err)
	}

	if positionFlag != "" {
		position := strings.ToUpper(positionFlag)
		var kept []fpl.Player
		for _, player := range players {
			if player.Position() == position {
				kept = append(kept, player)
			}
		}
		players = kept
	}

	if expression != "" {
		logger.Debug().Str("filter", expression).Msg("Filtering players")
		players, err = filter.MatchPlayers(ctx, expression, players)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	if len(players) == 0 {
		fmt.Println("No players found matching the filter criteria.")
		return nil
	}

	sortPlayers(players, sortBy)

	total := len(players)
	if listLimit > 0 && total > listLimit {
		players = players[:listLimit]
	}

	teams, err := teamNames(ctx)
	if err != nil {
		return err
	}

	if len(players) < total {
		fmt.Printf("\nShowing %d of %d players:\n", len(players), total)
	} else {
		fmt.Printf("\nFound %d players:\n", total)
	}
	printPlayerTable(players, teams)

	return nil
}

func runPlayersSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := strings.ToLower(strings.Join(args, " "))

	players, err := client.GetAllPlayers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch players: %w", err)
	}

	type match struct {
		player fpl.Player
		score  float64
	}

	var matches []match
	for _, player := range players {
		score := nameScore(query, player.WebName)
		if full := nameScore(query, player.FullName()); full > score {
			score = full
		}
		if score >= matchThreshold {
			matches = append(matches, match{player: player, score: score})
		}
	}

	if len(matches) == 0 {
		fmt.Printf("No players matching '%s'.\n", strings.Join(args, " "))
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if searchLimit > 0 && len(matches) > searchLimit {
		matches = matches[:searchLimit]
	}

	teams, err := teamNames(ctx)
	if err != nil {
		return err
	}

	results := make([]fpl.Player, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.player)
	}

	fmt.Printf("\nFound %d players:\n", len(results))
	printPlayerTable(results, teams)

	return nil
}

// nameScore rates how closely a query matches a name, 1.0 being exact.
// Substring matches count as exact so short queries still hit.
func nameScore(query, name string) float64 {
	name = strings.ToLower(name)
	if strings.Contains(name, query) {
		return 1.0
	}

	longest := max(len(query), len(name))
	if longest == 0 {
		return 0
	}

	distance := fuzzy.LevenshteinDistance(query, name)
	return 1.0 - float64(distance)/float64(longest)
}

func printPlayerTable(players []fpl.Player, teams map[int64]string) {
	fmt.Printf("%-22s %-5s %-4s %7s %6s %7s %6s\n", "NAME", "TEAM", "POS", "PRICE", "FORM", "OWNED", "PTS")
	fmt.Println(strings.Repeat("━", 64))

	for _, player := range players {
		fmt.Printf("%-22s %-5s %-4s %6.1fm %6s %6s%% %6d\n",
			player.WebName,
			teams[player.Team],
			player.Position(),
			player.Price(),
			player.Form,
			player.SelectedByPercent,
			player.TotalPoints,
		)
	}
}

func sortPlayers(players []fpl.Player, key string) {
	switch strings.ToLower(key) {
	case "price":
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].NowCost > players[j].NowCost
		})
	case "form":
		sort.SliceStable(players, func(i, j int) bool {
			return parseStat(players[i].Form) > parseStat(players[j].Form)
		})
	case "selected":
		sort.SliceStable(players, func(i, j int) bool {
			return parseStat(players[i].SelectedByPercent) > parseStat(players[j].SelectedByPercent)
		})
	default:
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].TotalPoints > players[j].TotalPoints
		})
	}
}

// parseStat reads one of the API's stringified decimal stats
func parseStat(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
