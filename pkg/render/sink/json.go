package sink

import (
	"bytes"

	"github.com/mbforbes/beautyplot/pkg/chartio"
	"github.com/mbforbes/beautyplot/pkg/figure"
)

// RenderJSON exports a style snapshot of every axes in fig.
func RenderJSON(fig *figure.Figure) ([]byte, error) {
	var buf bytes.Buffer
	if err := chartio.WriteSnapshot(&buf, fig); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
