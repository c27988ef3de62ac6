package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/smelt/internal/engine/rollup"
)

func (c *CLI) newRollupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Roll up type declarations for every workspace package",
		Long: `Run the declaration extractor across all workspace packages exposing a
src/index.ts entry, producing one rolled-up declaration file per package.
The run stops at the first extractor crash or erroring extraction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			tsconfigPath, _ := cmd.Flags().GetString("tsconfig")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.RollupDeclarations(cmd.Context(), rollup.Options{
				Root:         root,
				TsconfigPath: tsconfigPath,
				Verbose:      verbose,
			})
		},
	}

	cmd.Flags().String("root", ".", "Workspace root directory")
	cmd.Flags().String("tsconfig", "", "Workspace compiler configuration path")
	cmd.Flags().BoolP("verbose", "v", false, "Log per-package progress")
	return cmd
}
