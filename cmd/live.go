package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"
)

var (
	liveLimit  int
	liveFollow bool
)

var liveCmd = &cobra.Command{
	Use:   "live [gameweek]",
	Short: "Show live scores for a gameweek",
	Long: `Show live player scores for a gameweek. With --follow the scores are
refreshed on an interval until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLive,
}

func init() {
	liveCmd.Flags().IntVar(&liveLimit, "limit", 10, "number of players to show")
	liveCmd.Flags().BoolVar(&liveFollow, "follow", false, "keep refreshing the scores")
	rootCmd.AddCommand(liveCmd)
}

func runLive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gameweekID int64
	if len(args) > 0 {
		var err error
		gameweekID, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil || gameweekID < 1 {
			return fmt.Errorf("invalid gameweek '%s'", args[0])
		}
	} else {
		gameweek, err := currentGameweek(ctx)
		if err != nil {
			return err
		}
		gameweekID = gameweek.ID
	}

	if err := renderLive(ctx, gameweekID); err != nil {
		return err
	}

	if !liveFollow {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Live.PollInterval),
		gocron.NewTask(func() {
			if err := renderLive(ctx, gameweekID); err != nil {
				logger.Error().Err(err).Msg("Failed to refresh live scores")
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	scheduler.Start()
	fmt.Printf("\nRefreshing every %s. Press Ctrl+C to stop.\n", cfg.Live.PollInterval)

	<-ctx.Done()

	return scheduler.Shutdown()
}

func renderLive(ctx context.Context, gameweekID int64) error {
	live, err := client.GetLiveGameweek(ctx, gameweekID)
	if err != nil {
		return fmt.Errorf("failed to fetch live gameweek: %w", err)
	}

	names, err := playerNames(ctx)
	if err != nil {
		return err
	}

	elements := live.Elements
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Stats.TotalPoints > elements[j].Stats.TotalPoints
	})
	if liveLimit > 0 && len(elements) > liveLimit {
		elements = elements[:liveLimit]
	}

	fmt.Printf("\nGameweek %d live scores at %s:\n", gameweekID, time.Now().Format("15:04:05"))
	fmt.Printf("%-22s %4s %3s %3s %3s %4s %4s\n", "NAME", "PTS", "G", "A", "CS", "BPS", "MIN")
	fmt.Println(strings.Repeat("━", 52))

	for _, element := range elements {
		name := names[element.ID]
		if name == "" {
			name = fmt.Sprintf("#%d", element.ID)
		}

		fmt.Printf("%-22s %4d %3d %3d %3d %4d %4d\n",
			name,
			element.Stats.TotalPoints,
			element.Stats.GoalsScored,
			element.Stats.Assists,
			element.Stats.CleanSheets,
			element.Stats.BPS,
			element.Stats.Minutes,
		)
	}

	return nil
}
