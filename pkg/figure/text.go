package figure

// Default text properties for newly created axes.
const (
	DefaultTextColor  = "#000000"
	DefaultFontFamily = "sans-serif"
	DefaultTitleSize  = 12
	DefaultLabelSize  = 10
)

// Text is a styled string drawn on the figure: a title, an axis label or a
// tick label.
type Text struct {
	Content string
	Color   string
	Family  string
	Size    float64
}

func newText(content string, size float64) *Text {
	return &Text{
		Content: content,
		Color:   DefaultTextColor,
		Family:  DefaultFontFamily,
		Size:    size,
	}
}

// SetColor sets the text color.
func (t *Text) SetColor(c string) { t.Color = c }

// SetFamily sets the font family.
func (t *Text) SetFamily(f string) { t.Family = f }

// SetSize sets the font size in points.
func (t *Text) SetSize(s float64) { t.Size = s }

// SetContent replaces the displayed string.
func (t *Text) SetContent(s string) { t.Content = s }

func (t *Text) clone() *Text {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
