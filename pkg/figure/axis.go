package figure

import (
	"errors"
	"fmt"
)

// ErrInvalidLimits is returned when an axis is given min >= max, a NaN or
// infinite bound, or a range wider than the largest float64.
var ErrInvalidLimits = errors.New("invalid axis limits")

// AxisName identifies the horizontal or vertical axis.
type AxisName string

const (
	XAxisName AxisName = "x"
	YAxisName AxisName = "y"
)

// TickPosition selects which sides of the axes carry tick marks. Low is the
// bottom side for x and the left side for y.
type TickPosition int

const (
	TicksBoth TickPosition = iota
	TicksLow
	TicksHigh
	TicksNone
)

// OnLow reports whether ticks are drawn on the bottom (x) or left (y) side.
func (p TickPosition) OnLow() bool { return p == TicksBoth || p == TicksLow }

// OnHigh reports whether ticks are drawn on the top (x) or right (y) side.
func (p TickPosition) OnHigh() bool { return p == TicksBoth || p == TicksHigh }

// Default tick-mark parameters.
var (
	DefaultMajorTickParams = TickParams{
		Direction: DirectionIn,
		Color:     "#000000",
		Length:    3.5,
		Width:     0.8,
		Pad:       3.5,
	}
	DefaultMinorTickParams = TickParams{
		Direction: DirectionIn,
		Color:     "#000000",
		Length:    2,
		Width:     0.6,
		Pad:       3.4,
	}
)

// Grid describes the gridlines drawn across the plot from one axis.
type Grid struct {
	Visible bool
	Which   Which
	Color   string
	Width   float64
	Dash    []float64
}

// GridOption configures a Grid.
type GridOption func(*Grid)

func GridColor(c string) GridOption    { return func(g *Grid) { g.Color = c } }
func GridWidth(w float64) GridOption   { return func(g *Grid) { g.Width = w } }
func GridWhich(w Which) GridOption     { return func(g *Grid) { g.Which = w } }
func GridDash(d ...float64) GridOption { return func(g *Grid) { g.Dash = d } }

// Axis is the x or y axis of an Axes.
type Axis struct {
	Name     AxisName
	Label    *Text
	Major    *TickSet
	Minor    *TickSet
	Position TickPosition
	Grid     Grid

	Min, Max float64

	MajorLocator   Locator
	MinorLocator   MinorLocator
	MajorFormatter Formatter
	MinorFormatter Formatter
}

func newAxis(name AxisName) *Axis {
	a := &Axis{
		Name:           name,
		Label:          newText("", DefaultLabelSize),
		Major:          &TickSet{Params: DefaultMajorTickParams},
		Minor:          &TickSet{Params: DefaultMinorTickParams},
		Position:       TicksBoth,
		Grid:           Grid{Which: Major, Color: "#b0b0b0", Width: 0.8},
		Min:            0,
		Max:            1,
		MajorLocator:   MaxNLocator{N: defaultMaxTicks},
		MinorLocator:   NullLocator{},
		MajorFormatter: ScalarFormatter{},
		MinorFormatter: EmptyFormatter{},
	}
	a.UpdateTicks()
	return a
}

// SetLabel sets the axis label text.
func (a *Axis) SetLabel(s string) { a.Label.Content = s }

// SetTicksPosition selects which sides carry tick marks.
func (a *Axis) SetTicksPosition(p TickPosition) { a.Position = p }

// TickLeft restricts y-axis ticks to the left side.
func (a *Axis) TickLeft() { a.Position = TicksLow }

// TickRight restricts y-axis ticks to the right side.
func (a *Axis) TickRight() { a.Position = TicksHigh }

// TickBottom restricts x-axis ticks to the bottom side.
func (a *Axis) TickBottom() { a.Position = TicksLow }

// TickTop restricts x-axis ticks to the top side.
func (a *Axis) TickTop() { a.Position = TicksHigh }

// SetTickParams applies opts to the selected tiers. Only the fields named by
// opts change.
func (a *Axis) SetTickParams(which Which, opts ...TickOption) {
	if which&Major != 0 {
		a.Major.apply(opts)
	}
	if which&Minor != 0 {
		a.Minor.apply(opts)
	}
}

// MajorTicks returns the current major ticks.
func (a *Axis) MajorTicks() []*Tick { return a.Major.Ticks }

// MinorTicks returns the current minor ticks.
func (a *Axis) MinorTicks() []*Tick { return a.Minor.Ticks }

// EnableGrid turns gridlines on and applies opts.
func (a *Axis) EnableGrid(opts ...GridOption) {
	a.Grid.Visible = true
	for _, opt := range opts {
		opt(&a.Grid)
	}
}

// DisableGrid turns gridlines off, keeping their style.
func (a *Axis) DisableGrid() { a.Grid.Visible = false }

// Limits returns the data range shown along the axis.
func (a *Axis) Limits() (float64, float64) { return a.Min, a.Max }

// SetLimits sets the data range and regenerates ticks.
func (a *Axis) SetLimits(min, max float64) error {
	if !finite(min) || !finite(max) || min >= max || !finite(max-min) {
		return fmt.Errorf("%w: %s [%v, %v]", ErrInvalidLimits, a.Name, min, max)
	}
	a.Min, a.Max = min, max
	a.UpdateTicks()
	return nil
}

// SetMajorLocator replaces the major locator and regenerates ticks.
func (a *Axis) SetMajorLocator(l Locator) {
	a.MajorLocator = l
	a.UpdateTicks()
}

// SetMinorLocator replaces the minor locator and regenerates ticks.
func (a *Axis) SetMinorLocator(l MinorLocator) {
	a.MinorLocator = l
	a.UpdateTicks()
}

// UpdateTicks rebuilds both tick tiers from the locators and current limits.
func (a *Axis) UpdateTicks() {
	major := a.locateMajor()
	var minor []float64
	if a.MinorLocator != nil {
		minor = a.MinorLocator.LocateMinor(major, a.Min, a.Max)
	}
	a.Major.Ticks = buildTicks(a.Major, major, a.MajorFormatter)
	a.Minor.Ticks = buildTicks(a.Minor, minor, a.MinorFormatter)
}

func (a *Axis) locateMajor() []float64 {
	if a.MajorLocator == nil {
		return nil
	}
	return a.MajorLocator.Locate(a.Min, a.Max)
}

func buildTicks(set *TickSet, values []float64, f Formatter) []*Tick {
	tmpl := set.labelTemplate(*newText("", DefaultLabelSize))
	if f == nil {
		f = ScalarFormatter{}
	}
	ticks := make([]*Tick, len(values))
	for i, v := range values {
		label := tmpl
		label.Content = f.Format(v)
		ticks[i] = &Tick{Value: v, Label: &label}
	}
	return ticks
}

// Project maps a data value onto [0, 1] along the axis.
func (a *Axis) Project(v float64) float64 {
	return (v - a.Min) / (a.Max - a.Min)
}

func (a *Axis) clone() *Axis {
	c := *a
	c.Label = a.Label.clone()
	c.Major = a.Major.clone()
	c.Minor = a.Minor.clone()
	if a.Grid.Dash != nil {
		c.Grid.Dash = append([]float64(nil), a.Grid.Dash...)
	}
	if fl, ok := a.MajorLocator.(FixedLocator); ok {
		c.MajorLocator = FixedLocator{Values: append([]float64(nil), fl.Values...)}
	}
	if fl, ok := a.MinorLocator.(FixedLocator); ok {
		c.MinorLocator = FixedLocator{Values: append([]float64(nil), fl.Values...)}
	}
	return &c
}
