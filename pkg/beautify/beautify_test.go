package beautify

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/mbforbes/beautyplot/pkg/errors"
	"github.com/mbforbes/beautyplot/pkg/figure"
)

// newPopulatedAxes returns an axes with data, labels and both tick tiers.
func newPopulatedAxes(t *testing.T) *figure.Axes {
	t.Helper()
	fig := figure.New(640, 480)
	ax := fig.AddAxes()
	if _, err := ax.Plot([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}); err != nil {
		t.Fatalf("Plot() error: %v", err)
	}
	ax.SetTitle("squares")
	ax.SetXLabel("n")
	ax.SetYLabel("n²")
	ax.XAxis.SetMinorLocator(figure.AutoMinorLocator{})
	ax.YAxis.SetMinorLocator(figure.AutoMinorLocator{N: 4})
	if len(ax.XAxis.MinorTicks()) == 0 || len(ax.YAxis.MinorTicks()) == 0 {
		t.Fatal("fixture should have minor ticks on both axes")
	}
	return ax
}

func TestApplySpines(t *testing.T) {
	ax := newPopulatedAxes(t)
	if err := Apply(ax); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	for _, side := range []figure.Side{figure.Top, figure.Right} {
		if ax.Spine(side).Visible {
			t.Errorf("%s spine should be hidden", side)
		}
	}
	for _, side := range []figure.Side{figure.Bottom, figure.Left} {
		sp := ax.Spine(side)
		if !sp.Visible {
			t.Errorf("%s spine should stay visible", side)
		}
		if sp.Width != 0.5 {
			t.Errorf("%s spine width = %v, want 0.5", side, sp.Width)
		}
		if sp.Color != "#262626" {
			t.Errorf("%s spine color = %q, want #262626", side, sp.Color)
		}
	}
}

func TestApplyTicks(t *testing.T) {
	ax := newPopulatedAxes(t)
	if err := Apply(ax); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if ax.XAxis.Position != figure.TicksLow {
		t.Errorf("x ticks position = %v, want bottom only", ax.XAxis.Position)
	}
	if ax.YAxis.Position != figure.TicksLow {
		t.Errorf("y ticks position = %v, want left only", ax.YAxis.Position)
	}

	tests := []struct {
		name string
		set  *figure.TickSet
		want figure.TickParams
	}{
		{"x major", ax.XAxis.Major, figure.TickParams{Direction: figure.DirectionOut, Color: "#262626", Length: 6, Pad: 7}},
		{"y major", ax.YAxis.Major, figure.TickParams{Direction: figure.DirectionOut, Color: "#262626", Length: 6, Pad: 7}},
		{"x minor", ax.XAxis.Minor, figure.TickParams{Direction: figure.DirectionOut, Color: "#929292", Length: 4, Pad: 7}},
		{"y minor", ax.YAxis.Minor, figure.TickParams{Direction: figure.DirectionOut, Color: "#929292", Length: 4, Pad: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.Params
			got.Width = 0 // width is not part of the styling
			if got != tt.want {
				t.Errorf("params = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyText(t *testing.T) {
	ax := newPopulatedAxes(t)
	if err := Apply(ax); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	for name, txt := range map[string]*figure.Text{
		"title":  ax.Title,
		"xlabel": ax.XAxis.Label,
		"ylabel": ax.YAxis.Label,
	} {
		if txt.Color != "#262626" || txt.Family != "serif" {
			t.Errorf("%s = %+v, want #262626 serif", name, *txt)
		}
	}

	for _, a := range []*figure.Axis{ax.XAxis, ax.YAxis} {
		for _, tk := range a.MajorTicks() {
			if tk.Label.Color != "#262626" || tk.Label.Family != "serif" {
				t.Errorf("%s major label %q = %+v", a.Name, tk.Label.Content, *tk.Label)
			}
		}
		for _, tk := range a.MinorTicks() {
			if tk.Label.Color != "#929292" || tk.Label.Family != "serif" {
				t.Errorf("%s minor label at %v = %+v", a.Name, tk.Value, *tk.Label)
			}
		}
	}
}

func TestApplyGrid(t *testing.T) {
	tests := []struct {
		name  string
		xGrid bool
	}{
		{"x grid off before", false},
		{"x grid on before", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := newPopulatedAxes(t)
			if tt.xGrid {
				ax.Grid(figure.SelectX, figure.GridColor("#ff0000"))
			}
			before := ax.XAxis.Grid

			if err := Apply(ax); err != nil {
				t.Fatalf("Apply() error: %v", err)
			}

			if !ax.YAxis.Grid.Visible {
				t.Error("y grid should be enabled")
			}
			if ax.YAxis.Grid.Color != "#929292" {
				t.Errorf("y grid color = %q, want #929292", ax.YAxis.Grid.Color)
			}
			if ax.YAxis.Grid.Which != figure.Major {
				t.Errorf("y grid which = %v, want major", ax.YAxis.Grid.Which)
			}
			if !reflect.DeepEqual(ax.XAxis.Grid, before) {
				t.Errorf("x grid changed: %+v -> %+v", before, ax.XAxis.Grid)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	ax := newPopulatedAxes(t)
	if err := Apply(ax); err != nil {
		t.Fatal(err)
	}
	once := ax.Clone()

	if err := Apply(ax); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(once, ax) {
		t.Error("applying twice should equal applying once")
	}
}

func TestApplyNoAxes(t *testing.T) {
	if err := Apply(nil); !stderrors.Is(err, figure.ErrNoCurrentAxes) {
		t.Errorf("Apply(nil) error = %v, want ErrNoCurrentAxes", err)
	}

	fig := figure.New(100, 100)
	if err := ApplyCurrent(fig); !stderrors.Is(err, figure.ErrNoCurrentAxes) {
		t.Errorf("ApplyCurrent(empty) error = %v, want ErrNoCurrentAxes", err)
	}
	if err := ApplyCurrent(nil); !stderrors.Is(err, figure.ErrNoCurrentAxes) {
		t.Errorf("ApplyCurrent(nil) error = %v, want ErrNoCurrentAxes", err)
	}
}

func TestApplyCurrent(t *testing.T) {
	fig := figure.New(100, 100)
	first := fig.AddAxes()
	second := fig.AddAxes()

	if err := ApplyCurrent(fig); err != nil {
		t.Fatalf("ApplyCurrent() error: %v", err)
	}
	if second.Spine(figure.Top).Visible {
		t.Error("current axes should be styled")
	}
	if !first.Spine(figure.Top).Visible {
		t.Error("non-current axes should be left alone")
	}
}

func TestApplyInvalidThemeLeavesAxesUntouched(t *testing.T) {
	ax := newPopulatedAxes(t)
	before := ax.Clone()

	bad := DefaultTheme()
	bad.MidGrey = "grey"
	err := Apply(ax, WithTheme(bad))
	if !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Fatalf("Apply() error = %v, want INVALID_THEME", err)
	}
	if !reflect.DeepEqual(before, ax) {
		t.Error("axes should be unchanged after a rejected theme")
	}
}

func TestApplyCustomTheme(t *testing.T) {
	ax := newPopulatedAxes(t)
	theme := DefaultTheme()
	theme.NearBlack = "#111111"
	theme.NumberFont = "monospace"
	theme.SpineWidth = 1

	if err := Apply(ax, WithTheme(theme)); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if got := ax.Spine(figure.Left).Color; got != "#111111" {
		t.Errorf("left spine color = %q, want #111111", got)
	}
	if got := ax.Spine(figure.Bottom).Width; got != 1 {
		t.Errorf("bottom spine width = %v, want 1", got)
	}
	if got := ax.XAxis.MajorTicks()[0].Label.Family; got != "monospace" {
		t.Errorf("tick label family = %q, want monospace", got)
	}
	if got := ax.Title.Family; got != "serif" {
		t.Errorf("title family = %q, want serif", got)
	}
}

func TestStylingSurvivesLimitChange(t *testing.T) {
	ax := newPopulatedAxes(t)
	if err := Apply(ax); err != nil {
		t.Fatal(err)
	}
	if err := ax.SetXLim(-10, 10); err != nil {
		t.Fatal(err)
	}
	for _, tk := range ax.XAxis.MajorTicks() {
		if tk.Label.Family != "serif" {
			t.Errorf("regenerated label %q family = %q", tk.Label.Content, tk.Label.Family)
		}
	}
}
