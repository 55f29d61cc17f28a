// Package sink provides output format renderers for figures.
//
// # Overview
//
// A "sink" transforms a [figure.Figure] into a final output format:
//
//   - SVG: drawn directly from the figure model
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//   - JSON: a style snapshot of every axes
//
// # SVG Output
//
// [RenderSVG] honors every styled attribute of the figure: hidden spines are
// skipped, visible ones use their width and color; ticks are drawn only on
// the sides their axis allows, pointing in, out or both ways from the spine
// with their tier's length and color; tick labels sit past the tick by the
// tier's pad; gridlines are drawn for the tiers each axis enables.
//
//	svg := sink.RenderSVG(fig, sink.WithBackground("#fafafa"))
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first, then convert via
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// The go-chart engine in [gochart] produces PNG without librsvg.
//
// [figure.Figure]: github.com/mbforbes/beautyplot/pkg/figure.Figure
// [render.ToPDF]: github.com/mbforbes/beautyplot/pkg/render.ToPDF
// [render.ToPNG]: github.com/mbforbes/beautyplot/pkg/render.ToPNG
// [gochart]: github.com/mbforbes/beautyplot/pkg/render/gochart
package sink
