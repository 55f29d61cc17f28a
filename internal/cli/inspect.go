package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/chartio"
	"github.com/mbforbes/beautyplot/pkg/pipeline"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var themePath string
	var raw bool

	cmd := &cobra.Command{
		Use:   "inspect <chart.json>",
		Short: "Print the style snapshot of a chart",
		Long: `Inspect builds the chart, styles it (unless --raw) and prints a JSON
description of every styled attribute: spines, tick parameters, tick label
and text colors and fonts, and grid state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			theme, err := beautify.LoadTheme(themePath)
			if err != nil {
				return err
			}
			fig, _, err := pipeline.Build(data)
			if err != nil {
				return err
			}
			opts := pipeline.Options{Spec: data, Theme: theme, Raw: raw, Logger: c.Logger}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if err := pipeline.Style(cmd.Context(), fig, opts); err != nil {
				return err
			}
			return chartio.WriteSnapshot(cmd.OutOrStdout(), fig)
		},
	}

	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file (default: built-in theme)")
	cmd.Flags().BoolVar(&raw, "raw", false, "show the unstyled defaults")
	return cmd
}
