// Package render provides output rendering for figures.
//
// # Overview
//
// This package contains the conversion helpers shared by every renderer:
//
//   - [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert
//     tool (from librsvg)
//   - [EscapeXML] for text placed in SVG documents
//
// The renderers themselves live in subpackages:
//
//   - [sink]: SVG drawn directly from the figure model, plus PDF/PNG/JSON
//   - [gochart]: the same figure drawn by go-chart, with native PNG output
//
// Typical use:
//
//	svg := sink.RenderSVG(fig)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [sink]: github.com/mbforbes/beautyplot/pkg/render/sink
// [gochart]: github.com/mbforbes/beautyplot/pkg/render/gochart
package render
