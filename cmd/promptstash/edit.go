package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/berroteran/promptstash/pkg/core"
)

var (
	editText     string
	editFolder   string
	editTags     []string
	editFavorite bool
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing prompt",
	Long: `Apply a partial update to a prompt. Only the flags you pass are
changed; everything else keeps its current value. A folder is always
required so an edit can never orphan a prompt.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		id := args[0]

		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer stash.Close()

		var patch core.Patch
		if cmd.Flags().Changed("text") {
			patch.Text = &editText
		}
		if cmd.Flags().Changed("tags") {
			patch.Tags = editTags
		}
		if cmd.Flags().Changed("favorite") {
			patch.Favorite = &editFavorite
		}
		if editFolder != "" {
			patch.FolderID = &editFolder
		}

		if err := stash.Update(ctx, id, patch); err != nil {
			// The reporter already printed the localized message.
			os.Exit(1)
		}

		fmt.Printf("Prompt '%s' updated.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "New prompt text")
	editCmd.Flags().StringVarP(&editFolder, "folder", "f", "", "Folder id")
	editCmd.Flags().StringSliceVar(&editTags, "tags", nil, "Replace tags")
	editCmd.Flags().BoolVar(&editFavorite, "favorite", false, "Set favorite flag")
	editCmd.MarkFlagRequired("folder")
}
