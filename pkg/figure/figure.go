package figure

import (
	"errors"
	"slices"
)

var (
	// ErrNoCurrentAxes is returned when a figure has no axes to act on.
	ErrNoCurrentAxes = errors.New("no current axes")

	// ErrAxesNotInFigure is returned by Sca for axes owned by another figure.
	ErrAxesNotInFigure = errors.New("axes does not belong to figure")
)

// Default figure size in points.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Figure is the top-level container for one or more axes.
type Figure struct {
	Width      float64
	Height     float64
	Background string

	axes    []*Axes
	current *Axes
}

// New creates an empty figure. Non-positive sizes fall back to the defaults.
func New(width, height float64) *Figure {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Figure{Width: width, Height: height, Background: "#ffffff"}
}

// AddAxes creates a new axes, appends it and makes it current.
func (f *Figure) AddAxes() *Axes {
	ax := NewAxes()
	f.axes = append(f.axes, ax)
	f.current = ax
	return ax
}

// Gca returns the current axes.
func (f *Figure) Gca() (*Axes, error) {
	if f == nil || f.current == nil {
		return nil, ErrNoCurrentAxes
	}
	return f.current, nil
}

// Sca makes ax the current axes.
func (f *Figure) Sca(ax *Axes) error {
	if !slices.Contains(f.axes, ax) {
		return ErrAxesNotInFigure
	}
	f.current = ax
	return nil
}

// Axes returns the figure's axes in creation order.
func (f *Figure) Axes() []*Axes {
	return slices.Clone(f.axes)
}

// Delaxes removes ax. If it was current, the most recently added remaining
// axes becomes current.
func (f *Figure) Delaxes(ax *Axes) {
	i := slices.Index(f.axes, ax)
	if i < 0 {
		return
	}
	f.axes = slices.Delete(f.axes, i, i+1)
	if f.current == ax {
		f.current = nil
		if n := len(f.axes); n > 0 {
			f.current = f.axes[n-1]
		}
	}
}
