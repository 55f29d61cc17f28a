package figure

import (
	"fmt"
	"math"
)

// Rect is a position in figure fractions, measured from the bottom-left.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// DefaultRect leaves room for tick labels, axis labels and a title.
var DefaultRect = Rect{Left: 0.125, Bottom: 0.11, Width: 0.775, Height: 0.77}

// autoscaleMargin is the fraction of the data range added on each side.
const autoscaleMargin = 0.05

// AxisSelect picks the x axis, the y axis or both.
type AxisSelect int

const (
	SelectX AxisSelect = iota + 1
	SelectY
	SelectBoth
)

// Axes is a single drawing surface.
type Axes struct {
	Rect       Rect
	Background string
	Title      *Text
	XAxis      *Axis
	YAxis      *Axis
	Lines      []*Line

	spines     [4]*Spine
	autoscaleX bool
	autoscaleY bool
}

// NewAxes returns an empty axes with default styling.
func NewAxes() *Axes {
	ax := &Axes{
		Rect:       DefaultRect,
		Background: "#ffffff",
		Title:      newText("", DefaultTitleSize),
		XAxis:      newAxis(XAxisName),
		YAxis:      newAxis(YAxisName),
		autoscaleX: true,
		autoscaleY: true,
	}
	for _, side := range Sides {
		ax.spines[side] = newSpine(side)
	}
	return ax
}

// Spine returns the border line on the given side. It returns nil for an
// unknown side.
func (ax *Axes) Spine(side Side) *Spine {
	if side < Top || side > Left {
		return nil
	}
	return ax.spines[side]
}

// Spines returns all four spines in [Sides] order.
func (ax *Axes) Spines() []*Spine {
	return []*Spine{ax.spines[Top], ax.spines[Right], ax.spines[Bottom], ax.spines[Left]}
}

// Axis returns the axis with the given name, or nil.
func (ax *Axes) Axis(name AxisName) *Axis {
	switch name {
	case XAxisName:
		return ax.XAxis
	case YAxisName:
		return ax.YAxis
	}
	return nil
}

func (ax *Axes) selected(sel AxisSelect) []*Axis {
	switch sel {
	case SelectX:
		return []*Axis{ax.XAxis}
	case SelectY:
		return []*Axis{ax.YAxis}
	case SelectBoth:
		return []*Axis{ax.XAxis, ax.YAxis}
	}
	return nil
}

func (ax *Axes) SetTitle(s string)  { ax.Title.Content = s }
func (ax *Axes) SetXLabel(s string) { ax.XAxis.SetLabel(s) }
func (ax *Axes) SetYLabel(s string) { ax.YAxis.SetLabel(s) }

// SetXLim fixes the x range and stops autoscaling it.
func (ax *Axes) SetXLim(min, max float64) error {
	if err := ax.XAxis.SetLimits(min, max); err != nil {
		return err
	}
	ax.autoscaleX = false
	return nil
}

// SetYLim fixes the y range and stops autoscaling it.
func (ax *Axes) SetYLim(min, max float64) error {
	if err := ax.YAxis.SetLimits(min, max); err != nil {
		return err
	}
	ax.autoscaleY = false
	return nil
}

// TickParams applies opts to the selected tiers of the selected axes.
func (ax *Axes) TickParams(sel AxisSelect, which Which, opts ...TickOption) {
	for _, a := range ax.selected(sel) {
		a.SetTickParams(which, opts...)
	}
}

// Grid enables gridlines on the selected axes only. Axes not selected keep
// their grid state.
func (ax *Axes) Grid(sel AxisSelect, opts ...GridOption) {
	for _, a := range ax.selected(sel) {
		a.EnableGrid(opts...)
	}
}

// Plot adds a series and rescales any axis still in autoscale mode.
func (ax *Axes) Plot(x, y []float64, opts ...LineOption) (*Line, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("plot: x and y must have the same length, got %d and %d", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("plot: empty series")
	}
	l := &Line{
		X:     append([]float64(nil), x...),
		Y:     append([]float64(nil), y...),
		Color: Palette[len(ax.Lines)%len(Palette)],
		Width: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(l)
	}
	ax.Lines = append(ax.Lines, l)
	ax.autoscale()
	return l, nil
}

func (ax *Axes) autoscale() {
	if ax.autoscaleX {
		if lo, hi, ok := dataRange(ax.Lines, func(l *Line) []float64 { return l.X }); ok {
			_ = ax.XAxis.SetLimits(pad(lo, hi))
		}
	}
	if ax.autoscaleY {
		if lo, hi, ok := dataRange(ax.Lines, func(l *Line) []float64 { return l.Y }); ok {
			_ = ax.YAxis.SetLimits(pad(lo, hi))
		}
	}
}

func dataRange(lines []*Line, get func(*Line) []float64) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range lines {
		for _, v := range get(l) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi, lo <= hi
}

// pad widens [lo, hi] by autoscaleMargin on each side. When the padded range
// would not be finite the data range is returned as is.
func pad(lo, hi float64) (float64, float64) {
	if lo == hi {
		d := 0.5
		if lo-d == lo {
			d = math.Abs(lo) * autoscaleMargin
		}
		return lo - d, hi + d
	}
	m := hi*autoscaleMargin - lo*autoscaleMargin
	plo, phi := lo-m, hi+m
	if !finite(plo) || !finite(phi) || !finite(phi-plo) {
		return lo, hi
	}
	return plo, phi
}

// Clone returns a deep copy of the axes.
func (ax *Axes) Clone() *Axes {
	c := *ax
	c.Title = ax.Title.clone()
	c.XAxis = ax.XAxis.clone()
	c.YAxis = ax.YAxis.clone()
	for i, s := range ax.spines {
		sc := *s
		c.spines[i] = &sc
	}
	if ax.Lines != nil {
		c.Lines = make([]*Line, len(ax.Lines))
		for i, l := range ax.Lines {
			c.Lines[i] = l.clone()
		}
	}
	return &c
}
