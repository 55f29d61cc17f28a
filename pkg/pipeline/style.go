package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/cache"
	"github.com/mbforbes/beautyplot/pkg/chartio"
	"github.com/mbforbes/beautyplot/pkg/figure"
	"github.com/mbforbes/beautyplot/pkg/observability"
)

// Decode reads and validates a chart spec and returns it with a hash of
// the decoded form, so formatting differences share cache entries.
func Decode(data []byte) (*chartio.Spec, string, error) {
	spec, err := chartio.Read(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	canonical, err := json.Marshal(spec)
	if err != nil {
		return nil, "", err
	}
	return spec, cache.Hash(canonical), nil
}

// Build decodes a chart spec and returns its figure with the [Decode] hash.
func Build(data []byte) (*figure.Figure, string, error) {
	spec, hash, err := Decode(data)
	if err != nil {
		return nil, "", err
	}
	fig, err := spec.Build()
	if err != nil {
		return nil, "", err
	}
	return fig, hash, nil
}

// Style runs the styler on every axes of fig. With opts.Raw it does nothing.
func Style(ctx context.Context, fig *figure.Figure, opts Options) error {
	if opts.Raw {
		return nil
	}
	axes := fig.Axes()
	hooks := observability.Pipeline()
	hooks.OnStyleStart(ctx, len(axes))
	start := time.Now()

	err := styleAll(axes, opts)
	hooks.OnStyleComplete(ctx, len(axes), time.Since(start), err)
	return err
}

func styleAll(axes []*figure.Axes, opts Options) error {
	if len(axes) == 0 {
		return figure.ErrNoCurrentAxes
	}
	for _, ax := range axes {
		err := beautify.Apply(ax,
			beautify.WithTheme(opts.Theme),
			beautify.WithLogger(opts.Logger))
		if err != nil {
			return err
		}
	}
	return nil
}
