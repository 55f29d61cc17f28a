// Package cli implements the beautyplot command-line interface.
//
// # Commands
//
//   - render: style a JSON chart spec and write SVG, PNG, PDF or JSON
//   - inspect: print the style snapshot of a chart after styling
//   - theme: show the effective theme or write a starter theme file
//   - cache: clear or locate the artifact cache
//   - serve: run the HTTP rendering service
//   - completion: shell completion scripts
//
// All commands accept --verbose (-v) for debug logging.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mbforbes/beautyplot/pkg/buildinfo"
	"github.com/mbforbes/beautyplot/pkg/cache"
	"github.com/mbforbes/beautyplot/pkg/pipeline"
)

const appName = "beautyplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand returns the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "beautyplot restyles line charts into a clean, print-ready look",
		Long: `beautyplot reads a JSON chart description, applies a minimal style
(hidden top and right spines, thin off-black axes, outward ticks, serif
text, light horizontal gridlines) and renders it as SVG, PNG, PDF or a
JSON style snapshot.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner returns a pipeline runner over the local file cache, or no
// cache at all when noCache is set or the cache directory is unusable.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(c.localCache(noCache), nil, c.Logger)
}

func (c *CLI) localCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// openCache resolves a --cache flag value. An empty value means the local
// file cache.
func (c *CLI) openCache(ctx context.Context, url string) (cache.Cache, error) {
	if url == "" {
		return c.localCache(false), nil
	}
	return cache.Open(ctx, url)
}
