package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/stepwise/internal/cli"
	"github.com/aretw0/stepwise/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph-file>",
	Short: "Check a graph file without running it",
	Long:  `Reports unknown algorithms, empty node lists, out-of-range edge endpoints and start nodes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := cli.Validate(rt.Engine, args[0], overrides(cmd))
		if err != nil {
			if errs := schema.ValidationErrors(err); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
				}
			}
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Graph is valid: %s ✅\n", report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addRunFlags(validateCmd)
}
