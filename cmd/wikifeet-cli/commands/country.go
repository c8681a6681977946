package commands

import (
	"strings"
	"wikifeet-go/internal/scrapers/wikifeet"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(countryCmd)
}

var countryCmd = &cobra.Command{
	Use:   "country <name...>",
	Short: "Prints the poll results of a single country.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		country := strings.Join(args, " ")

		t := newTable(stdout)
		t.AppendHeader(table.Row{"Metric", country})
		for _, metric := range wikifeet.CountryMetrics() {
			value, err := current.client.CountryStat(ctx, metric, country)
			t.AppendRow(table.Row{string(metric), resultCell(value, err)})
		}
		t.Render()
	},
}
