package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AtomsForPeace/fpl-go/fpl"
)

var fixturesGameweek int64

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Show fixtures for a gameweek",
	RunE:  runFixtures,
}

func init() {
	fixturesCmd.Flags().Int64VarP(&fixturesGameweek, "gameweek", "g", 0, "gameweek number (defaults to the current gameweek)")
	rootCmd.AddCommand(fixturesCmd)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	gameweekID := fixturesGameweek
	if gameweekID == 0 {
		gameweek, err := currentGameweek(ctx)
		if err != nil {
			return err
		}
		gameweekID = gameweek.ID
	}

	fixtures, err := client.GetGameweekFixtures(ctx, gameweekID)
	if err != nil {
		return fmt.Errorf("failed to fetch fixtures: %w", err)
	}

	if len(fixtures) == 0 {
		fmt.Printf("No fixtures scheduled for gameweek %d.\n", gameweekID)
		return nil
	}

	teams, err := teamNames(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nGameweek %d fixtures:\n", gameweekID)
	fmt.Printf("%-18s %4s %-6s %-4s %-4s %s\n", "KICKOFF", "", "", "", "", "FDR")
	fmt.Println(strings.Repeat("━", 52))

	for _, fixture := range fixtures {
		fmt.Println(formatFixture(fixture, teams))
	}

	return nil
}

func formatFixture(fixture fpl.Fixture, teams map[int64]string) string {
	kickoff := "TBC"
	if fixture.KickoffTime != nil {
		if t, err := time.Parse(time.RFC3339, *fixture.KickoffTime); err == nil {
			kickoff = t.Local().Format(deadlineFormat)
		}
	}

	home := teams[fixture.TeamH]
	away := teams[fixture.TeamA]

	started := fixture.Started != nil && *fixture.Started

	middle := "v"
	status := ""
	switch {
	case fixture.Finished || fixture.FinishedProvisional:
		middle = fmt.Sprintf("%s - %s", formatScore(fixture.TeamHScore), formatScore(fixture.TeamAScore))
		status = "FT"
	case started:
		middle = fmt.Sprintf("%s - %s", formatScore(fixture.TeamHScore), formatScore(fixture.TeamAScore))
		status = fmt.Sprintf("%d'", fixture.Minutes)
	}

	return fmt.Sprintf("%-18s %4s %-6s %-4s %-4s %d-%d",
		kickoff, home, middle, away, status,
		fixture.TeamHDifficulty, fixture.TeamADifficulty)
}

func formatScore(score *int64) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *score)
}
