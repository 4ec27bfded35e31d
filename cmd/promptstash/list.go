package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/berroteran/promptstash/pkg/core"
)

var (
	listJSON     bool
	listFolder   string
	listText     string
	listFavorite bool
	listTag      string
	listOrder    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts, filtered and sorted",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		stash, err := openStash(ctx)
		if err != nil {
			fatal("Failed to open store", err)
		}
		defer stash.Close()

		results := core.FilterAndSort(stash.Records(), core.Criteria{
			Folder:   listFolder,
			Text:     listText,
			Favorite: listFavorite,
			Tag:      listTag,
			Order:    core.Order(listOrder),
		})

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(results); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		star := color.New(color.FgYellow).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()
		for _, r := range results {
			marker := " "
			if r.Favorite {
				marker = star("*")
			}
			line := fmt.Sprintf("%s %s  %s", marker, r.ID, firstLine(r.Text))
			if len(r.Tags) > 0 {
				line += "  " + dim("["+strings.Join(r.Tags, ", ")+"]")
			}
			fmt.Println(line)
		}
	},
}

// firstLine truncates a prompt to something that fits a terminal row.
func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	const max = 72
	if len(text) > max {
		return text[:max-1] + "…"
	}
	return text
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listFolder, "folder", "", "Only prompts in this folder")
	listCmd.Flags().StringVar(&listText, "text", "", "Only prompts containing this text (case-insensitive)")
	listCmd.Flags().BoolVar(&listFavorite, "favorite", false, "Only favorite prompts")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only prompts carrying this tag")
	listCmd.Flags().StringVar(&listOrder, "order", "", "Sort order: usage, updatedAt or createdAt (default)")
}
