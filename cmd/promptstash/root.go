package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/berroteran/promptstash"
	"github.com/berroteran/promptstash/internal/config"
)

var (
	verbose   bool
	storePath string
	backend   string
	locale    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "promptstash",
	Short: "A durable store for your reusable prompt snippets",
	Long: `Promptstash keeps your prompts in a local store with folders, tags,
favorites and usage tracking, persisted as a JSON file or a SQLite database.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Store location (file path)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Persistence backend: fs or sqlite")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Locale for validation messages")
}

// resolveConfig merges environment configuration with flag overrides.
func resolveConfig() *config.Config {
	cfg := config.Load()
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if locale != "" {
		cfg.Locale = locale
	}
	return cfg
}

// openStash wires and hydrates the store for a CLI invocation.
func openStash(ctx context.Context) (*promptstash.Stash, error) {
	cfg := resolveConfig()
	return promptstash.Open(ctx, cfg.StorePath,
		promptstash.WithAdapter(cfg.Backend),
		promptstash.WithLocale(cfg.Locale),
		promptstash.WithReporter(stderrReporter{}),
		promptstash.WithLogger(slog.Default()),
	)
}

// stderrReporter surfaces validation failure messages on stderr in red.
type stderrReporter struct{}

func (stderrReporter) Report(msg string) {
	color.New(color.FgRed).Fprintln(os.Stderr, msg)
}
