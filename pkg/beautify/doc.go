// Package beautify restyles an existing chart into a cleaner, more legible
// default presentation.
//
// # Overview
//
// [Apply] takes an axes that has already been built and populated and
// mutates its styling in place:
//
//   - the top and right spines are hidden, the bottom and left ones are made
//     thinner and off-black
//   - tick marks are kept on the left and bottom only, point outward and are
//     padded further from their labels
//   - major ticks and their labels are off-black, minor ones a lighter grey
//   - title, axis labels and tick labels switch to a serif family
//   - horizontal gridlines are drawn from the y axis in the lighter grey
//
// Call it after plotting and before rendering:
//
//	ax := fig.AddAxes()
//	ax.Plot(xs, ys)
//	if err := beautify.Apply(ax); err != nil {
//	    return err
//	}
//	out := sink.RenderSVG(fig)
//
// [ApplyCurrent] resolves the figure's current axes first and returns the
// figure's own error when there is none.
//
// # Themes
//
// The colors, fonts and sizes come from a [Theme]. [DefaultTheme] holds the
// fixed values (#262626 and #929292, serif, tick lengths 6 and 4, pad 7,
// spine width 0.5). Override them with [WithTheme], or load a TOML file with
// [LoadTheme]:
//
//	near_black = "#1a1a1a"
//	text_font  = "Georgia"
//
// Keys missing from the file keep their default.
//
// # Idempotence
//
// Every change assigns an absolute value, so applying the styling twice
// leaves the axes exactly as applying it once. X-axis gridlines and minor
// gridlines are never touched.
package beautify
