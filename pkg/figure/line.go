package figure

// Palette is the color cycle assigned to series that do not set a color.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultLineWidth is the stroke width of a series that does not set one.
const DefaultLineWidth = 1.5

// Line is a plotted x/y series.
type Line struct {
	Label string
	X, Y  []float64
	Color string
	Width float64
	Dash  []float64
}

// LineOption configures a Line at plot time.
type LineOption func(*Line)

func LineLabel(s string) LineOption    { return func(l *Line) { l.Label = s } }
func LineColor(c string) LineOption    { return func(l *Line) { l.Color = c } }
func LineWidth(w float64) LineOption   { return func(l *Line) { l.Width = w } }
func LineDash(d ...float64) LineOption { return func(l *Line) { l.Dash = d } }

func (l *Line) clone() *Line {
	c := *l
	c.X = append([]float64(nil), l.X...)
	c.Y = append([]float64(nil), l.Y...)
	if l.Dash != nil {
		c.Dash = append([]float64(nil), l.Dash...)
	}
	return &c
}
