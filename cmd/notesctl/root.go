package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"notes-client/config"
	"notes-client/internal/note/setup"
	"notes-client/pkg/log"
)

var (
	verbose    bool
	configPath string
	apiURL     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Command line client for the notes API",
	Long: `notesctl lists, searches, creates, edits and deletes notes on a remote notes API.
When the API is unreachable, listing falls back to the last page fetched successfully.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yaml (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Notes API base URL, overrides the config file")
}

// openStore loads configuration and builds the note store used by every
// subcommand. The caller closes the returned store.
func openStore() (*setup.Store, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if apiURL != "" {
		cfg.NotesAPI.URL = apiURL
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})

	store, err := setup.NewStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing note store: %w", err)
	}
	return store, nil
}
