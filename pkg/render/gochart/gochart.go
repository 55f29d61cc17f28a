package gochart

import (
	"io"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/errors"
	"github.com/mbforbes/beautyplot/pkg/figure"
)

// Output formats supported by Render.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// gridWidth is the stroke width of gridlines added by Beautify.
const gridWidth = 1.0

// Fonts holds optional faces for Beautify. Nil faces keep go-chart's default.
type Fonts struct {
	Text   *truetype.Font
	Number *truetype.Font
}

// LoadFont parses a TrueType font file.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "font %s", path)
	}
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse font %s", path)
	}
	return f, nil
}

// Color converts a "#rgb" or "#rrggbb" string into a go-chart color.
func Color(hex string) drawing.Color {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	return drawing.ColorFromHex(h)
}

// Beautify applies t to c in place. Only the y axes get gridlines; the x
// axis grid styles are not touched.
func Beautify(c *chart.Chart, t beautify.Theme, fonts Fonts) error {
	if c == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil chart")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	nearBlack, midGrey := Color(t.NearBlack), Color(t.MidGrey)

	c.TitleStyle.FontColor = nearBlack
	setFont(&c.TitleStyle, fonts.Text)

	styleAxisLine(&c.XAxis.Style, nearBlack, t.SpineWidth, fonts.Number)
	styleAxisLine(&c.XAxis.TickStyle, nearBlack, t.SpineWidth, fonts.Number)
	c.XAxis.NameStyle.FontColor = nearBlack
	setFont(&c.XAxis.NameStyle, fonts.Text)

	for _, y := range []*chart.YAxis{&c.YAxis, &c.YAxisSecondary} {
		styleAxisLine(&y.Style, nearBlack, t.SpineWidth, fonts.Number)
		styleAxisLine(&y.TickStyle, nearBlack, t.SpineWidth, fonts.Number)
		y.NameStyle.FontColor = nearBlack
		setFont(&y.NameStyle, fonts.Text)
		y.GridMajorStyle.Hidden = false
		y.GridMajorStyle.StrokeColor = midGrey
		y.GridMajorStyle.StrokeWidth = gridWidth
	}
	return nil
}

func styleAxisLine(s *chart.Style, color drawing.Color, width float64, font *truetype.Font) {
	s.StrokeColor = color
	s.StrokeWidth = width
	s.FontColor = color
	setFont(s, font)
}

func setFont(s *chart.Style, f *truetype.Font) {
	if f != nil {
		s.Font = f
	}
}

// FromAxes converts ax into a go-chart chart of the given pixel size.
func FromAxes(ax *figure.Axes, width, height int) (chart.Chart, error) {
	if ax == nil {
		return chart.Chart{}, figure.ErrNoCurrentAxes
	}

	c := chart.Chart{
		Width:      width,
		Height:     height,
		Title:      ax.Title.Content,
		TitleStyle: textStyle(ax.Title),
		Background: chart.Style{FillColor: Color(ax.Background)},
		XAxis: chart.XAxis{
			Name:           ax.XAxis.Label.Content,
			NameStyle:      textStyle(ax.XAxis.Label),
			Style:          axisStyle(ax.Spine(figure.Bottom), ax.XAxis),
			TickStyle:      tickStyle(ax.XAxis),
			Range:          &chart.ContinuousRange{Min: ax.XAxis.Min, Max: ax.XAxis.Max},
			Ticks:          ticks(ax.XAxis),
			GridMajorStyle: gridStyle(ax.XAxis, figure.Major),
			GridMinorStyle: gridStyle(ax.XAxis, figure.Minor),
		},
		YAxisSecondary: yAxis(ax, ax.Spine(figure.Left)),
		YAxis:          yAxis(ax, ax.Spine(figure.Right)),
	}
	// The primary axis carries no series, so it only shows when the right
	// spine does and never draws its own gridlines.
	c.YAxis.Name = ""
	c.YAxis.GridMajorStyle = chart.Style{Hidden: true}
	c.YAxis.GridMinorStyle = chart.Style{Hidden: true}

	for _, l := range ax.Lines {
		c.Series = append(c.Series, chart.ContinuousSeries{
			Name:    l.Label,
			YAxis:   chart.YAxisSecondary,
			XValues: l.X,
			YValues: l.Y,
			Style: chart.Style{
				StrokeColor:     Color(l.Color),
				StrokeWidth:     l.Width,
				StrokeDashArray: l.Dash,
			},
		})
	}
	return c, nil
}

func yAxis(ax *figure.Axes, spine *figure.Spine) chart.YAxis {
	a := ax.YAxis
	return chart.YAxis{
		Name:           a.Label.Content,
		NameStyle:      textStyle(a.Label),
		Style:          axisStyle(spine, a),
		TickStyle:      tickStyle(a),
		Range:          &chart.ContinuousRange{Min: a.Min, Max: a.Max},
		Ticks:          ticks(a),
		GridMajorStyle: gridStyle(a, figure.Major),
		GridMinorStyle: gridStyle(a, figure.Minor),
	}
}

func textStyle(t *figure.Text) chart.Style {
	return chart.Style{FontColor: Color(t.Color), FontSize: t.Size}
}

func axisStyle(spine *figure.Spine, a *figure.Axis) chart.Style {
	s := chart.Style{
		Hidden:      !spine.Visible,
		StrokeColor: Color(spine.Color),
		StrokeWidth: spine.Width,
	}
	if len(a.Major.Ticks) > 0 {
		s.FontColor = Color(a.Major.Ticks[0].Label.Color)
		s.FontSize = a.Major.Ticks[0].Label.Size
	}
	return s
}

func tickStyle(a *figure.Axis) chart.Style {
	return chart.Style{
		StrokeColor: Color(a.Major.Params.Color),
		StrokeWidth: a.Major.Params.Width,
	}
}

// ticks merges both tiers in value order; minor ticks carry their own
// (usually empty) labels.
func ticks(a *figure.Axis) []chart.Tick {
	out := make([]chart.Tick, 0, len(a.Major.Ticks)+len(a.Minor.Ticks))
	i, j := 0, 0
	for i < len(a.Major.Ticks) || j < len(a.Minor.Ticks) {
		if j >= len(a.Minor.Ticks) || (i < len(a.Major.Ticks) && a.Major.Ticks[i].Value <= a.Minor.Ticks[j].Value) {
			out = append(out, chart.Tick{Value: a.Major.Ticks[i].Value, Label: a.Major.Ticks[i].Label.Content})
			i++
			continue
		}
		out = append(out, chart.Tick{Value: a.Minor.Ticks[j].Value, Label: a.Minor.Ticks[j].Label.Content})
		j++
	}
	return out
}

func gridStyle(a *figure.Axis, which figure.Which) chart.Style {
	if !a.Grid.Visible || a.Grid.Which&which == 0 {
		return chart.Style{Hidden: true}
	}
	return chart.Style{
		StrokeColor:     Color(a.Grid.Color),
		StrokeWidth:     a.Grid.Width,
		StrokeDashArray: a.Grid.Dash,
	}
}

// Render writes c as PNG or SVG.
func Render(c chart.Chart, format string, w io.Writer) error {
	var rp chart.RendererProvider
	switch format {
	case FormatPNG:
		rp = chart.PNG
	case FormatSVG:
		rp = chart.SVG
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "go-chart cannot render %q (must be png or svg)", format)
	}
	if err := c.Render(rp, w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "go-chart render")
	}
	return nil
}
