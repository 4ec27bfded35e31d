package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/berroteran/promptstash/pkg/core"
)

var (
	addID     string
	addText   string
	addFolder string
	addTags   []string
	addFav    bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new prompt",
	Long:  `Create a prompt with the given text inside a folder, optionally tagged.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer stash.Close()

		id := addID
		if id == "" {
			id = uuid.NewString()
		}

		rec := core.Record{
			ID:       id,
			Text:     addText,
			Tags:     addTags,
			Favorite: addFav,
			FolderID: addFolder,
		}
		if err := stash.Create(ctx, rec); err != nil {
			// The reporter already printed the localized message.
			os.Exit(1)
		}

		fmt.Printf("Prompt '%s' added.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addID, "id", "", "Prompt id (generated when omitted)")
	addCmd.Flags().StringVarP(&addText, "text", "t", "", "Prompt text")
	addCmd.Flags().StringVarP(&addFolder, "folder", "f", "", "Folder id")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Comma-separated tags")
	addCmd.Flags().BoolVar(&addFav, "favorite", false, "Mark as favorite")
	addCmd.MarkFlagRequired("text")
	addCmd.MarkFlagRequired("folder")
}
