package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Prints the profile of the model best matching a name.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")

		ctx := cmd.Context()
		model, err := current.client.Search(ctx, query)
		showProfile(ctx, "search", query, model, err)
	},
}
