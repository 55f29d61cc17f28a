package beautify

import (
	"github.com/charmbracelet/log"

	"github.com/mbforbes/beautyplot/pkg/figure"
)

var (
	hiddenSpines = []figure.Side{figure.Top, figure.Right}
	keptSpines   = []figure.Side{figure.Bottom, figure.Left}
)

// Option configures Apply.
type Option func(*styler)

type styler struct {
	theme  Theme
	logger *log.Logger
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option { return func(s *styler) { s.theme = t } }

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option { return func(s *styler) { s.logger = l } }

// Apply restyles ax in place. A nil ax yields [figure.ErrNoCurrentAxes]; an
// invalid theme yields an INVALID_THEME error. In both cases ax is left
// untouched.
func Apply(ax *figure.Axes, opts ...Option) error {
	s := styler{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	if ax == nil {
		return figure.ErrNoCurrentAxes
	}
	if err := s.theme.Validate(); err != nil {
		return err
	}

	s.apply(ax)
	s.logger.Debug("beautified axes",
		"title", ax.Title.Content,
		"x_ticks", len(ax.XAxis.MajorTicks())+len(ax.XAxis.MinorTicks()),
		"y_ticks", len(ax.YAxis.MajorTicks())+len(ax.YAxis.MinorTicks()))
	return nil
}

// ApplyCurrent restyles the figure's current axes. Errors from resolving
// the current axes are returned unchanged.
func ApplyCurrent(fig *figure.Figure, opts ...Option) error {
	ax, err := fig.Gca()
	if err != nil {
		return err
	}
	return Apply(ax, opts...)
}

func (s *styler) apply(ax *figure.Axes) {
	t := s.theme

	for _, side := range hiddenSpines {
		ax.Spine(side).SetVisible(false)
	}

	// No ticks on the hidden spines.
	ax.YAxis.TickLeft()
	ax.XAxis.TickBottom()

	for _, a := range []*figure.Axis{ax.XAxis, ax.YAxis} {
		a.SetTickParams(figure.Both,
			figure.TickDirection(figure.DirectionOut),
			figure.TickPad(t.TickPad))
		a.SetTickParams(figure.Major,
			figure.TickColor(t.NearBlack),
			figure.TickLength(t.MajorTickLength))
		a.SetTickParams(figure.Minor,
			figure.TickColor(t.MidGrey),
			figure.TickLength(t.MinorTickLength))
	}

	for _, side := range keptSpines {
		sp := ax.Spine(side)
		sp.SetWidth(t.SpineWidth)
		sp.SetColor(t.NearBlack)
	}

	for _, label := range []*figure.Text{ax.YAxis.Label, ax.XAxis.Label, ax.Title} {
		label.SetColor(t.NearBlack)
		label.SetFamily(t.TextFont)
	}

	for _, a := range []*figure.Axis{ax.YAxis, ax.XAxis} {
		for _, tk := range a.MajorTicks() {
			tk.Label.SetColor(t.NearBlack)
			tk.Label.SetFamily(t.NumberFont)
		}
		for _, tk := range a.MinorTicks() {
			tk.Label.SetColor(t.MidGrey)
			tk.Label.SetFamily(t.NumberFont)
		}
	}

	ax.Grid(figure.SelectY, figure.GridWhich(figure.Major), figure.GridColor(t.MidGrey))
}
