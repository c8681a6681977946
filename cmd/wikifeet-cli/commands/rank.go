package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rankIndex *int

func init() {
	rankIndex = rankCmd.Flags().Int("index", 0, "Which of the models sharing the rank to pick.")
	rootCmd.AddCommand(rankCmd)
}

func parseRank(arg string) (int, error) {
	rank, err := strconv.Atoi(arg)
	if err != nil || rank <= 0 {
		return 0, fmt.Errorf("rank must be a positive integer, got %q", arg)
	}
	return rank, nil
}

var rankCmd = &cobra.Command{
	Use:   "rank <id> [--index <n>]",
	Short: "Prints the profile of the model at a rank of the feet of the year listing.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := parseRank(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		model, err := current.client.ByRankIndex(ctx, rank, *rankIndex)
		showProfile(ctx, "rank", args[0], model, err)
		return nil
	},
}
