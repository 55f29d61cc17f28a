// Package gochart draws figures with github.com/wcharczuk/go-chart/v2 and
// applies beautify themes to go-chart charts.
//
// # Converting Figures
//
// [FromAxes] turns a styled [figure.Axes] into a [chart.Chart]. Spines map
// to axis lines (the figure's left spine becomes go-chart's secondary,
// left-hand y axis; a hidden right spine hides the primary one), tick labels
// and axis names keep their colors, gridlines keep their color and which
// axis enables them. Tick lengths, directions and font family names have no
// go-chart equivalent and are dropped.
//
//	c, err := gochart.FromAxes(ax, 800, 600)
//	err = gochart.Render(c, "png", w)
//
// # Styling go-chart Charts
//
// [Beautify] applies a [beautify.Theme] directly to any go-chart chart:
// off-black axis lines, tick labels, names and title, the theme's spine
// width, and mid-grey major gridlines on the y axes. X-axis gridlines are
// left as they are. Font families are not names in go-chart; pass parsed
// faces in [Fonts], for instance from [LoadFont].
//
// # Limitations
//
// go-chart has a single tick tier per axis with one style. The gochart
// engine therefore differs from the svg engine:
//
//   - minor ticks are merged into the major list and drawn with the major
//     tick color and width, so the grey minor tier is not visible
//   - ticks are always drawn the way go-chart draws them; the outward
//     direction, the 6 and 4 lengths and the label pad are not applied
//
// Use the svg engine (`beautyplot render --engine svg`, the default) when
// the minor tier or tick geometry matters.
//
// [figure.Axes]: github.com/mbforbes/beautyplot/pkg/figure.Axes
// [beautify.Theme]: github.com/mbforbes/beautyplot/pkg/beautify.Theme
package gochart
