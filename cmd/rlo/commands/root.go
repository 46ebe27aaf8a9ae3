// Package commands implements the CLI commands for the rlo renderer.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"go.trai.ch/rlo/internal/adapters/config"
)

// CLI represents the command line interface for rlo.
type CLI struct {
	rootCmd *cobra.Command
}

// New creates a new CLI instance.
func New() *CLI {
	rootCmd := &cobra.Command{
		Use:           "rlo",
		Short:         "Rich live output renderer for task-run event streams",
		Long:          "rlo renders per-host task lifecycle events as a scrolling log with a live progress region, designed for humans using modern terminals.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "rlo.yaml", "Path to options file")
	rootCmd.PersistentFlags().CountP("verbosity", "v", "Increase output verbosity")
	rootCmd.PersistentFlags().Bool("display-skipped-hosts", true, "Log skipped tasks")
	rootCmd.PersistentFlags().Bool("display-ok-hosts", true, "Log unchanged ok tasks")
	rootCmd.PersistentFlags().Bool("check-mode-markers", false, "Mark check-mode tasks in descriptions")
	rootCmd.PersistentFlags().Bool("show-task-path-on-failure", false, "Print the task path under failures")

	c := &CLI{rootCmd: rootCmd}

	rootCmd.AddCommand(c.newReplayCmd())
	rootCmd.AddCommand(c.newDemoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// loadConfig layers the persistent flags over the options file and the
// environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("verbosity") {
		cfg.Verbosity, _ = cmd.Flags().GetCount("verbosity")
	}
	if cmd.Flags().Changed("display-skipped-hosts") {
		cfg.DisplaySkippedHosts, _ = cmd.Flags().GetBool("display-skipped-hosts")
	}
	if cmd.Flags().Changed("display-ok-hosts") {
		cfg.DisplayOkHosts, _ = cmd.Flags().GetBool("display-ok-hosts")
	}
	if cmd.Flags().Changed("check-mode-markers") {
		cfg.CheckModeMarkers, _ = cmd.Flags().GetBool("check-mode-markers")
	}
	if cmd.Flags().Changed("show-task-path-on-failure") {
		cfg.ShowTaskPathOnFailure, _ = cmd.Flags().GetBool("show-task-path-on-failure")
	}

	return cfg, nil
}
