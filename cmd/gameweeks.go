package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

const deadlineFormat = "Mon 02 Jan 15:04"

var gameweeksCmd = &cobra.Command{
	Use:   "gameweeks",
	Short: "Show the gameweeks of the season",
	RunE:  runGameweeks,
}

var gameweeksCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show details of the current gameweek",
	RunE:  runGameweeksCurrent,
}

func init() {
	gameweeksCmd.AddCommand(gameweeksCurrentCmd)
	rootCmd.AddCommand(gameweeksCmd)
}

func runGameweeks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	gameweeks, err := client.GetStaticGameweeks(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch gameweeks: %w", err)
	}

	fmt.Printf("%-2s %-14s %-18s %8s %9s\n", "", "GAMEWEEK", "DEADLINE", "AVG PTS", "FINISHED")
	fmt.Println(strings.Repeat("━", 56))

	for _, gameweek := range gameweeks {
		marker := " "
		switch {
		case gameweek.IsCurrent:
			marker = "→"
		case gameweek.IsNext:
			marker = "•"
		}

		deadline := gameweek.DeadlineTime
		if t, err := gameweek.Deadline(); err == nil {
			deadline = t.Format(deadlineFormat)
		}

		average := "-"
		if gameweek.AverageEntryScore > 0 {
			average = fmt.Sprintf("%d", gameweek.AverageEntryScore)
		}

		fmt.Printf("%-2s %-14s %-18s %8s %9s\n",
			marker,
			gameweek.Name,
			deadline,
			average,
			boolToStatus(gameweek.Finished),
		)
	}

	return nil
}

func runGameweeksCurrent(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	gameweek, err := currentGameweek(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", gameweek.Name)
	fmt.Println(strings.Repeat("-", 40))

	if t, err := gameweek.Deadline(); err == nil {
		fmt.Printf("Deadline:         %s\n", t.Format(deadlineFormat))
	}
	fmt.Printf("Finished:         %s\n", boolToStatus(gameweek.Finished))
	fmt.Printf("Average score:    %d\n", gameweek.AverageEntryScore)
	if gameweek.HighestScore != nil {
		fmt.Printf("Highest score:    %d\n", *gameweek.HighestScore)
	}
	fmt.Printf("Transfers made:   %d\n", gameweek.TransfersMade)

	if gameweek.MostCaptained != nil {
		if player, err := client.GetPlayer(ctx, *gameweek.MostCaptained); err == nil {
			fmt.Printf("Most captained:   %s\n", player.WebName)
		}
	}
	if gameweek.MostTransferredIn != nil {
		if player, err := client.GetPlayer(ctx, *gameweek.MostTransferredIn); err == nil {
			fmt.Printf("Most bought:      %s\n", player.WebName)
		}
	}
	if gameweek.TopElementInfo != nil {
		if player, err := client.GetPlayer(ctx, gameweek.TopElementInfo.ID); err == nil {
			fmt.Printf("Top player:       %s (%d pts)\n", player.WebName, gameweek.TopElementInfo.Points)
		}
	}

	if len(gameweek.ChipPlays) > 0 {
		fmt.Println("\nChips played:")
		for _, chip := range gameweek.ChipPlays {
			fmt.Printf("  %-16s %d\n", chip.ChipName, chip.NumPlayed)
		}
	}

	return nil
}

// currentGameweek finds the gameweek flagged as current
func currentGameweek(ctx context.Context) (*fpl.Gameweek, error) {
	gameweeks, err := client.GetStaticGameweeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gameweeks: %w", err)
	}

	for i := range gameweeks {
		if gameweeks[i].IsCurrent {
			return &gameweeks[i], nil
		}
	}

	return nil, fmt.Errorf("no current gameweek, the season may not have started")
}

func boolToStatus(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
