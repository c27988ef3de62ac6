package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/smelt/internal/engine/assembler"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [dir]",
		Short: "Assemble bundler configurations for a package",
		Long: `Assemble the bundler configurations for one package from its manifest
conventions (main, module, bundle, namespace, standalone) and print them as
JSON for the bundler wrapper to consume.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			opts := assembler.Options{Dir: dir}
			opts.Production, _ = cmd.Flags().GetBool("production")
			opts.Input, _ = cmd.Flags().GetString("input")
			opts.MainPath, _ = cmd.Flags().GetString("main")
			opts.ModulePath, _ = cmd.Flags().GetString("module")
			opts.BundlePath, _ = cmd.Flags().GetString("bundle")
			opts.External, _ = cmd.Flags().GetStringSlice("external")
			opts.ExcludeExternal, _ = cmd.Flags().GetStringSlice("exclude-external")

			if cmd.Flags().Changed("sourcemap") {
				opts.Sourcemap, _ = cmd.Flags().GetBool("sourcemap")
			} else {
				opts.Sourcemap = c.app.SourcemapDefault()
			}

			configs, err := c.app.AssembleBundle(opts)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(configs, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolP("production", "p", false, "Additionally emit the minified UMD output")
	cmd.Flags().Bool("sourcemap", false, "Emit sourcemaps for every output")
	cmd.Flags().String("input", "", "Entry point override")
	cmd.Flags().String("main", "", "CommonJS output path override")
	cmd.Flags().String("module", "", "ESM output path override")
	cmd.Flags().String("bundle", "", "UMD output path override")
	cmd.Flags().StringSlice("external", nil, "Additional externals")
	cmd.Flags().StringSlice("exclude-external", nil, "Externals to remove from the final list")
	return cmd
}
