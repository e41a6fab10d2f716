package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stepwise/internal/cli"
)

var replayCmd = &cobra.Command{
	Use:   "replay <graph-file>",
	Short: "Step through a run interactively",
	Long:  `Runs the graph file and lets you move forward, back or jump between the recorded steps.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()
		cmd.SetContext(sc)

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		noColor, _ := cmd.Flags().GetBool("no-color")
		return cli.Replay(sc, rt.Engine, cli.ReplayOptions{
			Path:      args[0],
			Overrides: overrides(cmd),
			Color:     !noColor && cli.IsTerminal(os.Stdout),
		}, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	addRunFlags(replayCmd)
	replayCmd.Flags().Bool("no-color", false, "Disable colors")
}
