package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the prompt store",
	Long:  `Create the store location and verify it can be opened.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg := resolveConfig()
		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to initialize store", err)
		}
		defer stash.Close()

		fmt.Printf("Store ready at %s (%s backend, %d prompts).\n",
			cfg.StorePath, cfg.Backend, stash.Len())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
