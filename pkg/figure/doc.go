// Package figure provides the chart object model that styling and rendering operate on.
//
// # Overview
//
// A [Figure] owns a list of [Axes] and tracks which one is current. Each
// Axes carries four [Spine] border lines, an x and a y [Axis], a title and
// the plotted [Line] series. An Axis owns two [TickSet] tiers (major and
// minor), each with its tick-mark parameters and the ticks themselves; every
// [Tick] has a [Text] label.
//
//	fig := figure.New(640, 480)
//	ax := fig.AddAxes()
//	_, _ = ax.Plot([]float64{0, 1, 2}, []float64{1, 4, 9})
//	ax.SetTitle("squares")
//
// # Current Axes
//
// [Figure.Gca] returns the current axes, or [ErrNoCurrentAxes] when the
// figure has none. Code that needs a drawing surface should accept an *Axes
// directly and leave resolution to the caller.
//
// # Ticks
//
// Tick positions come from a [Locator] (major) and a [MinorLocator] (minor)
// and are regenerated by [Axis.UpdateTicks] whenever limits change.
// Regenerated labels keep the color, family and size of the labels they
// replace, so styling applied before a limit change survives it.
//
// # Defaults
//
// [NewAxes] starts from the classic plotting defaults: all four spines
// visible, ticks on both sides pointing in, black sans-serif text and no
// gridlines.
package figure
