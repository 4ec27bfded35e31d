package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/berroteran/promptstash/pkg/adapters/fs"
)

// watchCmd follows external changes to the store file, e.g. another
// promptstash invocation or a hand edit, and reports the record count
// after each reload. Only the fs backend supports watching.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store file for external changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer stash.Close()

		backend, ok := stash.Backend().(*fs.Backend)
		if !ok {
			fatal("Watch is unsupported", fmt.Errorf("backend %q cannot be watched", resolveConfig().Backend))
		}

		changes, err := backend.Watch(ctx)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		fmt.Printf("Watching %s (Ctrl-C to stop)...\n", backend.Path())
		for range changes {
			if err := stash.Init(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Reload failed: %v\n", err)
				continue
			}
			fmt.Printf("Store changed on disk, reloaded %d prompts.\n", stash.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
