package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AtomsForPeace/fpl-go/config"
	"github.com/AtomsForPeace/fpl-go/fpl"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *fpl.Client

	version   = "dev"
	buildTime = "unknown"

	// Shared command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fpl",
	Short: "A CLI for Fantasy Premier League data",
	Long: `fpl browses Fantasy Premier League data from the terminal: players,
fixtures, gameweeks, live scores, managers and leagues.

Player listings accept a boolean filter expression, for example:
  fpl players list --filter 'isMidfielder() and price() < 8.0 and form() > 5.0'`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the version and build time shown by the version command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and creates the shared API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error

	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client = fpl.NewClient(
		fpl.WithBaseURL(cfg.API.BaseURL),
		fpl.WithTimeout(cfg.API.Timeout),
		fpl.WithUserAgent(cfg.API.UserAgent),
		fpl.WithLogger(logger),
	)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	noColor := !cfg.Color
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		noColor = true
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression determines which filter expression to apply.
// Priority: command line filter > preset > config default. An empty
// result means no filtering.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.Default, nil
}

// teamNames returns a lookup from team ID to short name
func teamNames(ctx context.Context) (map[int64]string, error) {
	teams, err := client.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	names := make(map[int64]string, len(teams))
	for _, team := range teams {
		names[team.ID] = team.ShortName
	}
	return names, nil
}

// playerNames returns a lookup from player ID to web name
func playerNames(ctx context.Context) (map[int64]string, error) {
	players, err := client.GetAllPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}

	names := make(map[int64]string, len(players))
	for _, player := range players {
		names[player.ID] = player.WebName
	}
	return names, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// The root's PersistentPreRunE would load config and build a client;
	// version needs neither.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fpl %s\n", version)
		fmt.Printf("  build time: %s\n", buildTime)
		fmt.Printf("  go version: %s\n", runtime.Version())
	},
}
