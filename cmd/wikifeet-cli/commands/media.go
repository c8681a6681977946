package commands

import (
	"context"
	"strings"
	"wikifeet-go/internal/scrapers/wikifeet"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var mediaCount *int

func init() {
	mediaCount = mediaCmd.PersistentFlags().IntP("count", "n", 1, "How many random photos to pick.")
	mediaCmd.AddCommand(mediaRankCmd)
	mediaCmd.AddCommand(mediaSearchCmd)
	rootCmd.AddCommand(mediaCmd)
}

func showMedia(ctx context.Context, query string, model wikifeet.Model, resolveErr error) {
	current.recordLookup(ctx, query, model, resolveErr)
	if resolveErr != nil {
		fail(ctx, "could not resolve model", resolveErr)
		return
	}

	t := newTable(stdout)
	t.AppendHeader(table.Row{"#", "Thumbnail", "Image"})
	for i := range max(*mediaCount, 1) {
		media, err := model.Media(ctx)
		if err != nil {
			fail(ctx, "could not pick a photo", err)
			return
		}
		t.AppendRow(table.Row{i + 1, media.Thumbnail, media.Image})
	}
	t.Render()
}

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Prints random photos of a model.",
}

var mediaRankCmd = &cobra.Command{
	Use:   "rank <id> [--count <n>]",
	Short: "Picks photos of the model at a rank.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := parseRank(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		model, err := current.client.ByRank(ctx, rank)
		showMedia(ctx, args[0], model, err)
		return nil
	},
}

var mediaSearchCmd = &cobra.Command{
	Use:   "search <query...> [--count <n>]",
	Short: "Picks photos of the model best matching a name.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		ctx := cmd.Context()
		model, err := current.client.Search(ctx, query)
		showMedia(ctx, query, model, err)
	},
}
