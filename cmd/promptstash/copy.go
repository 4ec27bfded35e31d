package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// copyCmd prints a prompt's text on stdout so it can be piped to a
// clipboard tool, and records the use for usage-ranked listing.
var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Print a prompt's text and record the use",
	Long: `Write the prompt text to stdout (pipe it to pbcopy, xclip or wl-copy)
and increment its usage counter, which feeds 'list --order usage'.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id := args[0]

		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer stash.Close()

		rec, ok := stash.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Prompt '%s' not found.\n", id)
			os.Exit(1)
		}

		stash.IncrementUsage(ctx, id)
		fmt.Print(rec.Text)
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
