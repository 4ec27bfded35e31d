package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var favCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Toggle a prompt's favorite flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id := args[0]

		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer stash.Close()

		if !stash.ToggleFavorite(ctx, id) {
			fmt.Printf("Prompt '%s' not found, nothing to do.\n", id)
			return
		}

		rec, _ := stash.Get(id)
		if rec.Favorite {
			fmt.Printf("Prompt '%s' marked as favorite.\n", id)
		} else {
			fmt.Printf("Prompt '%s' unmarked as favorite.\n", id)
		}
	},
}

func init() {
	rootCmd.AddCommand(favCmd)
}
