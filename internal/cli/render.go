package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output    string
	formats   []string
	engine    string
	themePath string
	fontPath  string
	scale     float64
	raw       bool
	noCache   bool
	refresh   bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		engine: pipeline.EngineSVG,
		scale:  pipeline.DefaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render <chart.json>",
		Short: "Style a chart spec and render it",
		Long: `Render reads a JSON chart spec, applies the beautify style and writes
one file per requested format. With a single format, --output names the
file ("-" writes to stdout); with several, it is the base path and the
format is appended as the extension.`,
		Example: `  beautyplot render growth.json
  beautyplot render growth.json -f svg,png -o out/growth
  beautyplot render growth.json --engine gochart --font ~/fonts/Lora.ttf -f png
  beautyplot render growth.json --raw -o before.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = pipeline.ParseFormats(formatsStr)
			if len(opts.formats) == 0 {
				opts.formats = []string{pipeline.FormatSVG}
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateEngine(opts.engine); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "render engine: svg, gochart")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file (default: built-in theme)")
	cmd.Flags().StringVar(&opts.fontPath, "font", "", "TTF font for the gochart engine")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor for the svg engine")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "skip styling and render the default look")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	spec, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read chart spec: %w", err)
	}
	theme, err := beautify.LoadTheme(opts.themePath)
	if err != nil {
		return err
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Execute(cmd.Context(), pipeline.Options{
		Spec:     spec,
		Theme:    theme,
		Formats:  opts.formats,
		Engine:   opts.engine,
		Raw:      opts.raw,
		Scale:    opts.scale,
		FontPath: opts.fontPath,
		Refresh:  opts.refresh,
		Logger:   c.Logger,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if opts.output == "-" {
		if len(opts.formats) != 1 {
			return fmt.Errorf("--output - needs exactly one format, got %d", len(opts.formats))
		}
		_, err := cmd.OutOrStdout().Write(res.Artifacts[opts.formats[0]])
		return err
	}

	paths := outputPaths(input, opts.output, opts.formats)
	written := make([]string, 0, len(paths))
	for _, format := range sortedKeys(paths) {
		path := paths[format]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(written)))
	printSuccess("Rendered %s", StyleValue.Render(filepath.Base(input)))
	for _, p := range written {
		printFile(p)
	}
	printRenderStats(res.Stats.AxesCount, len(written), res.Stats.Bytes, res.Cached())
	if opts.themePath != "" {
		printKeyValue("theme", opts.themePath)
	}
	if opts.raw {
		printWarning("Styling skipped (--raw)")
	}
	return nil
}

// outputPaths maps each format to its destination. A single format with an
// explicit output uses it verbatim; otherwise the output (or the input
// without its extension) is a base path.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
