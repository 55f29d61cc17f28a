package figure

import "fmt"

// Direction controls which way tick marks point relative to the drawing area.
type Direction string

const (
	DirectionIn    Direction = "in"
	DirectionOut   Direction = "out"
	DirectionInOut Direction = "inout"
)

// Which selects the major tier, the minor tier, or both.
type Which int

const (
	Major Which = 1 << iota
	Minor
	Both = Major | Minor
)

func (w Which) String() string {
	switch w {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Both:
		return "both"
	}
	return fmt.Sprintf("which(%d)", int(w))
}

// TickParams holds the tick-mark appearance shared by every tick of a tier.
// Pad is the gap between the mark and its label.
type TickParams struct {
	Direction Direction
	Color     string
	Length    float64
	Width     float64
	Pad       float64
}

// TickOption sets one field of a TickParams.
type TickOption func(*TickParams)

func TickDirection(d Direction) TickOption { return func(p *TickParams) { p.Direction = d } }
func TickColor(c string) TickOption        { return func(p *TickParams) { p.Color = c } }
func TickLength(l float64) TickOption      { return func(p *TickParams) { p.Length = l } }
func TickWidth(w float64) TickOption       { return func(p *TickParams) { p.Width = w } }
func TickPad(pad float64) TickOption       { return func(p *TickParams) { p.Pad = pad } }

// Tick is a single graduation mark and its label.
type Tick struct {
	Value float64
	Label *Text
}

// TickSet is one tier (major or minor) of an axis.
type TickSet struct {
	Params TickParams
	Ticks  []*Tick
}

func (s *TickSet) apply(opts []TickOption) {
	for _, opt := range opts {
		opt(&s.Params)
	}
}

// labelTemplate returns the styling new labels should inherit: the first
// existing label when there is one, otherwise def.
func (s *TickSet) labelTemplate(def Text) Text {
	if len(s.Ticks) > 0 && s.Ticks[0].Label != nil {
		return *s.Ticks[0].Label
	}
	return def
}

func (s *TickSet) clone() *TickSet {
	if s == nil {
		return nil
	}
	c := &TickSet{Params: s.Params}
	if s.Ticks != nil {
		c.Ticks = make([]*Tick, len(s.Ticks))
		for i, t := range s.Ticks {
			c.Ticks[i] = &Tick{Value: t.Value, Label: t.Label.clone()}
		}
	}
	return c
}
