package figure

import "fmt"

// Side names one of the four borders of an axes.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists every side in drawing order.
var Sides = []Side{Top, Right, Bottom, Left}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// ParseSide converts "top", "right", "bottom" or "left" to a Side.
func ParseSide(s string) (Side, error) {
	for _, side := range Sides {
		if side.String() == s {
			return side, nil
		}
	}
	return 0, fmt.Errorf("unknown spine side %q", s)
}

// Default spine properties.
const (
	DefaultSpineWidth = 0.8
	DefaultSpineColor = "#000000"
)

// Spine is one of the four border lines delimiting the drawing area.
type Spine struct {
	Side    Side
	Visible bool
	Width   float64
	Color   string
}

func newSpine(side Side) *Spine {
	return &Spine{
		Side:    side,
		Visible: true,
		Width:   DefaultSpineWidth,
		Color:   DefaultSpineColor,
	}
}

// SetVisible shows or hides the spine.
func (s *Spine) SetVisible(v bool) { s.Visible = v }

// SetWidth sets the line width in points.
func (s *Spine) SetWidth(w float64) { s.Width = w }

// SetColor sets the line color.
func (s *Spine) SetColor(c string) { s.Color = c }
