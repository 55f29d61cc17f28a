package beautify_test

import (
	"errors"
	"fmt"

	"github.com/mbforbes/beautyplot/pkg/beautify"
	"github.com/mbforbes/beautyplot/pkg/figure"
)

func ExampleApply() {
	fig := figure.New(640, 480)
	ax := fig.AddAxes()
	_, _ = ax.Plot([]float64{0, 1, 2}, []float64{1, 3, 2})
	ax.SetTitle("demo")

	if err := beautify.Apply(ax); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("top spine visible:", ax.Spine(figure.Top).Visible)
	fmt.Println("left spine:", ax.Spine(figure.Left).Width, ax.Spine(figure.Left).Color)
	fmt.Println("tick direction:", ax.XAxis.Major.Params.Direction)
	fmt.Println("title font:", ax.Title.Family)
	fmt.Println("y grid:", ax.YAxis.Grid.Visible, ax.YAxis.Grid.Color)
	// Output:
	// top spine visible: false
	// left spine: 0.5 #262626
	// tick direction: out
	// title font: serif
	// y grid: true #929292
}

func ExampleApplyCurrent() {
	fig := figure.New(640, 480)
	err := beautify.ApplyCurrent(fig)
	fmt.Println(errors.Is(err, figure.ErrNoCurrentAxes))
	// Output: true
}
