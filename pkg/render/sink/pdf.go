package sink

import (
	"github.com/mbforbes/beautyplot/pkg/figure"
	"github.com/mbforbes/beautyplot/pkg/render"
)

// RenderPDF renders the figure as PDF via SVG conversion. opts are passed to
// [RenderSVG].
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(fig *figure.Figure, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(fig, opts...))
}
