package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/stepwise"
	"github.com/aretw0/stepwise/internal/cli"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		algs := stepwise.New().Algorithms()
		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(algs)
		}
		return cli.PrintAlgorithms(cmd.OutOrStdout(), algs)
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
	algorithmsCmd.Flags().Bool("json", false, "Print the catalog as JSON")
}
