package commands

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyLimit *int

func init() {
	historyLimit = historyCmd.Flags().Int("limit", 20, "The maximum amount of lookups to list.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history [--limit <n>]",
	Short: "Lists the lookups recorded with --record, newest first.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		store := current.history
		if store == nil {
			opened, err := current.openHistory()
			if err != nil {
				fail(ctx, "failed to open history store", err)
				return
			}
			current.history = opened
			store = opened
		}

		lookups, err := store.Recent(ctx, *historyLimit)
		if err != nil {
			fail(ctx, "failed to list lookups", err)
			return
		}

		t := newTable(stdout)
		t.AppendHeader(table.Row{"Time", "Kind", "Query", "Outcome", "Name", "Page"})
		for _, l := range lookups {
			t.AppendRow(table.Row{
				l.Time.Format(time.DateTime),
				l.Kind,
				l.Query,
				string(l.Outcome),
				textCell(l.Name),
				l.PageURL,
			})
		}
		t.Render()
	},
}
