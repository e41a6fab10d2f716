package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stepwise/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run <graph-file>",
	Short: "Run an algorithm and print every step",
	Long: `Runs the algorithm named in a YAML or JSON graph file (or "-" for stdin)
and prints each recorded step. Colors are used when stdout is a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		jsonMode, _ := cmd.Flags().GetBool("json")
		summary, _ := cmd.Flags().GetBool("summary")
		noColor, _ := cmd.Flags().GetBool("no-color")

		return cli.Run(cmd.Context(), rt.Engine, cli.RunOptions{
			Path:      args[0],
			Overrides: overrides(cmd),
			JSON:      jsonMode,
			Summary:   summary,
			Color:     !noColor && cli.IsTerminal(os.Stdout),
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
	runCmd.Flags().Bool("json", false, "Print the steps as JSON")
	runCmd.Flags().Bool("summary", false, "Print a markdown summary of the final state")
	runCmd.Flags().Bool("no-color", false, "Disable colors")
}
