package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var stdout io.Writer = os.Stdout

var (
	configPath *string
	verbose    *bool
	seed       *uint64
	record     *bool
	dumpDir    *string
)

func init() {
	flags := rootCmd.PersistentFlags()
	configPath = flags.String("config", "wikifeet.json5", "The config file to read, <name>.local.json5 is merged over it.")
	verbose = flags.BoolP("verbose", "v", false, "Log debug output.")
	seed = flags.Uint64("seed", 0, "Seed the random photo selection to make it reproducible.")
	record = flags.Bool("record", false, "Write every lookup to the history store.")
	dumpDir = flags.String("dump", "", "Write every fetched page into this directory.")
}

var rootCmd = &cobra.Command{
	Use:   "wikifeet-cli",
	Short: "wikifeet-cli looks up models and poll results on wikifeet.com.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), appOptions{
			configPath: *configPath,
			verbose:    *verbose,
			seeded:     cmd.Flags().Changed("seed"),
			seed:       *seed,
			record:     *record,
			dumpDir:    *dumpDir,
		})
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.close(cmd.Context())
		}
	},
	SilenceUsage: true,
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
