package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a prompt",
	Long:  `Remove a prompt from the store. Deleting an unknown id is not an error.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id := args[0]

		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer stash.Close()

		if stash.Delete(ctx, id) {
			fmt.Printf("Prompt '%s' deleted.\n", id)
		} else {
			fmt.Printf("Prompt '%s' not found, nothing to do.\n", id)
		}
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
