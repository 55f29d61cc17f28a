package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mbforbes/beautyplot/pkg/errors"
	"github.com/mbforbes/beautyplot/pkg/figure"
	"github.com/mbforbes/beautyplot/pkg/observability"
	"github.com/mbforbes/beautyplot/pkg/render"
	"github.com/mbforbes/beautyplot/pkg/render/gochart"
	"github.com/mbforbes/beautyplot/pkg/render/sink"
)

// Render produces each format in formats from fig with opts.Engine.
func Render(ctx context.Context, fig *figure.Figure, formats []string, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	hooks := observability.Pipeline()

	for _, format := range formats {
		hooks.OnRenderStart(ctx, format, opts.Engine)
		start := time.Now()

		var data []byte
		var err error
		switch opts.Engine {
		case EngineGoChart:
			data, err = renderGoChart(fig, format, opts)
		default:
			data, err = renderSVGEngine(fig, format, opts)
		}

		hooks.OnRenderComplete(ctx, format, opts.Engine, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderSVGEngine(fig *figure.Figure, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(fig), nil
	case FormatPNG:
		return sink.RenderPNG(fig, sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(fig)
	case FormatJSON:
		return sink.RenderJSON(fig)
	default:
		return nil, ValidateFormat(format)
	}
}

// renderGoChart draws the current axes with go-chart. PDF converts the
// go-chart SVG; JSON is the same style snapshot as the svg engine.
func renderGoChart(fig *figure.Figure, format string, opts Options) ([]byte, error) {
	if format == FormatJSON {
		return sink.RenderJSON(fig)
	}

	ax, err := fig.Gca()
	if err != nil {
		return nil, err
	}
	c, err := gochart.FromAxes(ax, int(fig.Width), int(fig.Height))
	if err != nil {
		return nil, err
	}
	if !opts.Raw {
		fonts, err := loadFonts(opts.FontPath)
		if err != nil {
			return nil, err
		}
		if err := gochart.Beautify(&c, opts.Theme, fonts); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	switch format {
	case FormatSVG, FormatPNG:
		err = gochart.Render(c, format, &buf)
	case FormatPDF:
		if err = gochart.Render(c, FormatSVG, &buf); err == nil {
			return render.ToPDF(buf.Bytes())
		}
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "gochart engine cannot render %q", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadFonts(path string) (gochart.Fonts, error) {
	if path == "" {
		return gochart.Fonts{}, nil
	}
	f, err := gochart.LoadFont(path)
	if err != nil {
		return gochart.Fonts{}, err
	}
	return gochart.Fonts{Text: f, Number: f}, nil
}

func formatScale(s float64) string {
	return strconv.FormatFloat(s, 'g', -1, 64)
}
