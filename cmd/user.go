package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var picksGameweek int64

var userCmd = &cobra.Command{
	Use:   "user [entry-id]",
	Short: "Show a manager's entry",
	Long: `Show a manager's entry summary. The entry ID may be given as an argument
or set as entry.id in the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUser,
}

var userPicksCmd = &cobra.Command{
	Use:   "picks [entry-id]",
	Short: "Show a manager's squad for a gameweek",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUserPicks,
}

var userTransfersCmd = &cobra.Command{
	Use:   "transfers [entry-id]",
	Short: "Show a manager's transfer history",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUserTransfers,
}

func init() {
	userPicksCmd.Flags().Int64VarP(&picksGameweek, "gameweek", "g", 0, "gameweek number (defaults to the manager's current gameweek)")

	userCmd.AddCommand(userPicksCmd)
	userCmd.AddCommand(userTransfersCmd)
	rootCmd.AddCommand(userCmd)
}

// resolveEntryID picks the manager entry from the arguments or config
func resolveEntryID(args []string) (int64, error) {
	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 1 {
			return 0, fmt.Errorf("invalid entry ID '%s'", args[0])
		}
		return id, nil
	}

	if cfg.Entry.ID > 0 {
		return cfg.Entry.ID, nil
	}

	return 0, fmt.Errorf("no entry ID given and entry.id is not set in config")
}

func runUser(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	entryID, err := resolveEntryID(args)
	if err != nil {
		return err
	}

	user, err := client.GetUser(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to fetch entry %d: %w", entryID, err)
	}

	fmt.Printf("\n%s (%s)\n", user.FullName(), user.Name)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Country:          %s\n", user.PlayerRegionName)
	fmt.Printf("Overall points:   %d\n", user.SummaryOverallPoints)
	fmt.Printf("Overall rank:     %d\n", user.SummaryOverallRank)
	if user.SummaryEventRank != nil {
		fmt.Printf("Gameweek points:  %d (rank %d)\n", user.SummaryEventPoints, *user.SummaryEventRank)
	} else {
		fmt.Printf("Gameweek points:  %d\n", user.SummaryEventPoints)
	}
	fmt.Printf("Team value:       %.1fm (bank %.1fm)\n",
		float64(user.LastDeadlineValue)/10,
		float64(user.LastDeadlineBank)/10)
	fmt.Printf("Total transfers:  %d\n", user.LastDeadlineTotalTransfers)
	fmt.Printf("Classic leagues:  %d\n", len(user.Leagues.Classic))

	return nil
}

func runUserPicks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	entryID, err := resolveEntryID(args)
	if err != nil {
		return err
	}

	gameweekID := picksGameweek
	if gameweekID == 0 {
		user, err := client.GetUser(ctx, entryID)
		if err != nil {
			return fmt.Errorf("failed to fetch entry %d: %w", entryID, err)
		}
		gameweekID = user.CurrentEvent
	}

	picks, err := client.GetUserPicks(ctx, entryID, gameweekID)
	if err != nil {
		return fmt.Errorf("failed to fetch picks: %w", err)
	}

	names, err := playerNames(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nGameweek %d: %d points", gameweekID, picks.EntryHistory.Points)
	if picks.EntryHistory.EventTransfersCost > 0 {
		fmt.Printf(" (%d transfer cost)", picks.EntryHistory.EventTransfersCost)
	}
	fmt.Println()
	if picks.ActiveChip != nil {
		fmt.Printf("Chip played: %s\n", *picks.ActiveChip)
	}
	fmt.Println(strings.Repeat("-", 40))

	for _, pick := range picks.Picks {
		if pick.Position == 12 {
			fmt.Printf("%s bench\n", strings.Repeat("-", 12))
		}

		marker := ""
		switch {
		case pick.IsCaptain && pick.Multiplier == 3:
			marker = " (TC)"
		case pick.IsCaptain:
			marker = " (C)"
		case pick.IsViceCaptain:
			marker = " (V)"
		}

		name := names[pick.Element]
		if name == "" {
			name = fmt.Sprintf("#%d", pick.Element)
		}

		fmt.Printf("%2d  %s%s\n", pick.Position, name, marker)
	}

	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Points on bench: %d\n", picks.EntryHistory.PointsOnBench)

	return nil
}

func runUserTransfers(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	entryID, err := resolveEntryID(args)
	if err != nil {
		return err
	}

	transfers, err := client.GetUserTransfers(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to fetch transfers: %w", err)
	}

	if len(transfers) == 0 {
		fmt.Println("No transfers made.")
		return nil
	}

	names, err := playerNames(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nFound %d transfers:\n", len(transfers))
	fmt.Printf("%-3s %-28s %-28s %s\n", "GW", "IN", "OUT", "DATE")
	fmt.Println(strings.Repeat("━", 72))

	for _, transfer := range transfers {
		in := names[transfer.ElementIn]
		if in == "" {
			in = fmt.Sprintf("#%d", transfer.ElementIn)
		}
		out := names[transfer.ElementOut]
		if out == "" {
			out = fmt.Sprintf("#%d", transfer.ElementOut)
		}

		date := transfer.Time
		if t, err := time.Parse(time.RFC3339, transfer.Time); err == nil {
			date = t.Format("02 Jan 2006")
		}

		fmt.Printf("%-3d %-28s %-28s %s\n",
			transfer.Event,
			fmt.Sprintf("%s (%.1fm)", in, float64(transfer.ElementInCost)/10),
			fmt.Sprintf("%s (%.1fm)", out, float64(transfer.ElementOutCost)/10),
			date,
		)
	}

	return nil
}
