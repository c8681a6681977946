package commands

import (
	"wikifeet-go/internal/scrapers/wikifeet"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints the results of the site-wide polls.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		t := newTable(stdout)
		t.AppendHeader(table.Row{"Metric", "Answer", "Share"})
		for _, metric := range wikifeet.PollMetrics() {
			value, err := current.client.PollStat(ctx, metric)
			t.AppendRow(table.Row{string(metric), metric.Label(), resultCell(value, err)})
		}
		t.Render()
	},
}
