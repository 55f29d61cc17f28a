package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/errors"
)

const defaultThemeFile = "beautyplot.toml"

func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or create style themes",
	}
	cmd.AddCommand(c.themeShowCommand())
	cmd.AddCommand(c.themeInitCommand())
	return cmd
}

func (c *CLI) themeShowCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective theme as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := beautify.LoadTheme(path)
			if err != nil {
				return err
			}
			c.Logger.Debug("theme loaded", "path", path, "hash", t.Hash()[:12])
			return t.Encode(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&path, "theme", "", "TOML theme file to resolve against the defaults")
	return cmd
}

func (c *CLI) themeInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default theme to a TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultThemeFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeTheme(path, beautify.DefaultTheme(), force); err != nil {
				return err
			}
			printSuccess("Wrote theme")
			printFile(path)
			printNextStep("Use it with", fmt.Sprintf("%s render chart.json --theme %s", appName, path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func writeTheme(path string, t beautify.Theme, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if os.IsExist(err) {
		return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}
	if err := t.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
