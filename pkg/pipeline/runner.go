package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mbforbes/beautyplot/pkg/cache"
	"github.com/mbforbes/beautyplot/pkg/observability"
)

// Runner executes the pipeline with an artifact cache. It keeps no state
// between runs, so one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute builds, styles and renders opts.Spec. The spec is always decoded
// and validated, but formats already in the cache are returned without
// building the figure; the rest are rendered in one pass and stored.
// Stats.AxesCount stays zero when every format was cached.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	spec, specHash, err := Decode(opts.Spec)
	if err != nil {
		return nil, err
	}
	res := &Result{
		SpecHash:  specHash,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheHits: make(map[string]bool, len(opts.Formats)),
	}

	missing := r.lookup(ctx, specHash, opts, res)
	if len(missing) == 0 {
		r.Logger.Debug("all artifacts cached", "spec", specHash[:12], "formats", opts.Formats)
		return res, nil
	}

	fig, err := spec.Build()
	if err != nil {
		return nil, err
	}
	res.Stats.AxesCount = len(fig.Axes())

	styleStart := time.Now()
	if err := Style(ctx, fig, opts); err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	res.Stats.StyleTime = time.Since(styleStart)

	renderStart := time.Now()
	rendered, err := Render(ctx, fig, missing, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.RenderTime = time.Since(renderStart)

	for format, data := range rendered {
		res.Artifacts[format] = data
		res.Stats.Bytes += len(data)
		key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}

	r.Logger.Info("rendered chart",
		"formats", missing,
		"engine", opts.Engine,
		"raw", opts.Raw,
		"style", res.Stats.StyleTime,
		"render", res.Stats.RenderTime)
	return res, nil
}

// lookup fills res with cached artifacts and returns the formats still to
// render. Cache read errors count as misses.
func (r *Runner) lookup(ctx context.Context, specHash string, opts Options, res *Result) []string {
	var missing []string
	hooks := observability.Cache()
	for _, format := range opts.Formats {
		res.CacheHits[format] = false
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, format)
			missing = append(missing, format)
			continue
		}
		hooks.OnCacheHit(ctx, format)
		res.Artifacts[format] = data
		res.CacheHits[format] = true
		res.Stats.Bytes += len(data)
	}
	return missing
}

// Close closes the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
