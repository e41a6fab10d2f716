package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/stepwise/internal/cli"
	"github.com/aretw0/stepwise/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "stepwise",
	Short: "Stepwise records graph algorithms step by step",
	Long: `Stepwise runs Dijkstra, Bellman-Ford, Kruskal and Prim on small weighted
graphs and records every intermediate state for teaching visualizations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// setup loads the configuration and logger shared by every command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := cli.CreateLogger(cfg.Log, level)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// newRuntime builds the engine for commands that execute algorithms.
func newRuntime(cmd *cobra.Command) (*cli.Runtime, error) {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	return cli.NewRuntime(cmd.Context(), cfg, logger)
}

// addRunFlags registers the flags that override the graph file.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", "", "Algorithm to run, overriding the graph file")
	cmd.Flags().IntP("start", "s", 0, "Start node index, overriding the graph file")
}

func overrides(cmd *cobra.Command) cli.Overrides {
	var o cli.Overrides
	o.Algorithm, _ = cmd.Flags().GetString("algorithm")
	if cmd.Flags().Changed("start") {
		start, _ := cmd.Flags().GetInt("start")
		o.Start = &start
	}
	return o
}
