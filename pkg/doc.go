// Package pkg holds the beautyplot libraries.
//
// # Overview
//
// beautyplot restyles line charts into a minimal, print-ready look: the top
// and right spines are hidden, the remaining axes are thin and off-black,
// ticks point outward, text is set in a serif face and light gridlines run
// along the y axis only. The packages are layered:
//
//  1. [figure] - the plotting object model (figures, axes, spines, ticks, text)
//  2. [beautify] - the styler and its [beautify.Theme]
//  3. [chartio] - JSON chart specs in, style snapshots out
//  4. [render/sink] and [render/gochart] - SVG/PNG/PDF/JSON output
//  5. [pipeline] - build → style → render with an artifact [cache]
//
// # Data Flow
//
//	chart spec (JSON)
//	       ↓
//	  [chartio] Spec.Build → *figure.Figure
//	       ↓
//	  [beautify] Apply(ax)
//	       ↓
//	  [render/sink] or [render/gochart]
//	       ↓
//	  SVG / PNG / PDF / JSON
//
// # Quick Start
//
//	fig := figure.New(640, 480)
//	ax := fig.AddAxes()
//	ax.Plot([]float64{0, 1, 2}, []float64{0, 1, 4})
//	ax.SetTitle("Growth")
//
//	if err := beautify.ApplyCurrent(fig); err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(fig)
//
// [figure]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/figure
// [beautify]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/beautify
// [beautify.Theme]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/beautify#Theme
// [chartio]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/chartio
// [render/sink]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/render/sink
// [render/gochart]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/render/gochart
// [pipeline]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/mbforbes/beautyplot/pkg/cache
package pkg
