package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stepwise/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <graph-file>",
	Short: "Export a step as a Mermaid diagram",
	Long:  `Runs the graph file and outputs a Mermaid flowchart (graph LR) of one step, the final one by default.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		step, _ := cmd.Flags().GetInt("step")
		return cli.Graph(cmd.Context(), rt.Engine, cli.GraphOptions{
			Path:      args[0],
			Overrides: overrides(cmd),
			Step:      step,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addRunFlags(graphCmd)
	graphCmd.Flags().Int("step", 0, "1-based step to export (0 for the final step)")
}
