package cli

import (
	"github.com/spf13/cobra"

	"github.com/mbforbes/beautyplot/internal/server"
	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/cache"
	"github.com/mbforbes/beautyplot/pkg/pipeline"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		cacheURL  string
		prefix    string
		themePath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Long: `Serve exposes the renderer over HTTP:

  GET  /healthz      build information
  GET  /v1/theme     the server's theme as JSON
  POST /v1/render    body: chart spec JSON; query: format, engine, raw

--cache accepts a directory, file://, redis://, mongodb:// or "none".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			theme, err := beautify.LoadTheme(themePath)
			if err != nil {
				return err
			}
			store, err := c.openCache(ctx, cacheURL)
			if err != nil {
				return err
			}
			var keyer cache.Keyer
			if prefix != "" {
				keyer = cache.NewScopedKeyer(nil, prefix)
			}
			runner := pipeline.NewRunner(store, keyer, c.Logger)
			defer runner.Close()

			srv := server.New(server.Config{
				Addr:   addr,
				Runner: runner,
				Theme:  theme,
				Logger: c.Logger,
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&cacheURL, "cache", "", "cache location (default: local cache directory)")
	cmd.Flags().StringVar(&prefix, "cache-prefix", "", "namespace prepended to cache keys on shared backends")
	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file (default: built-in theme)")
	return cmd
}
