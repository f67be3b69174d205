package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/graceapps/breezediff/internal/breeze"
	"github.com/graceapps/breezediff/internal/config"
)

var version = "dev"

var (
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "breezediff",
	Short:   "Inspect a Breeze ChMS account and diff profile snapshots",
	Version: version,
	Long: `breezediff talks to a Breeze ChMS account, captures point-in-time
snapshots of its profile data, and reports which profile fields changed
between two snapshots.

Credentials come from ~/.config/breezediff/config.yml or the BREEZE_URL
and BREEZE_API_KEY environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log API requests to stderr")
	rootCmd.AddCommand(accountCmd, fieldsCmd, peopleCmd, snapshotCmd, compareCmd)
}

// newBreezeClient builds an API client from the loaded config. A variable so
// tests can substitute a fake.
var newBreezeClient = func() (*breeze.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	url, key, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}
	return breeze.New(url, key, breeze.WithLogger(commandLogger()))
}

func commandLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
