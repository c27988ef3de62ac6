// Package commands implements the CLI commands for the smelt build helper.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/smelt/internal/adapters/config"
	"go.trai.ch/smelt/internal/app"
)

// CLI represents the command line interface for smelt.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "smelt",
		Short:         "Build helpers for plugin package monorepos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// The value is consumed in main before the component graph is built;
	// the flag is registered here so cobra accepts and documents it.
	rootCmd.PersistentFlags().String("config", config.Filename, "Tool configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBundleCmd())
	rootCmd.AddCommand(c.newRollupCmd())
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

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
