package sink

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/mbforbes/beautyplot/pkg/figure"
	"github.com/mbforbes/beautyplot/pkg/render"
)

const (
	labelGap      = 4
	titleGap      = 6
	charWidthRate = 0.6
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
}

// WithBackground overrides the figure background. An empty color leaves the
// background transparent.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// RenderSVG draws every axes of fig into a standalone SVG document.
func RenderSVG(fig *figure.Figure, opts ...SVGOption) []byte {
	r := svgRenderer{background: fig.Background}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		fig.Width, fig.Height, fig.Width, fig.Height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			fig.Width, fig.Height, render.EscapeXML(r.background))
	}
	for i, ax := range fig.Axes() {
		renderAxes(&buf, frameFor(fig, ax), ax, i)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frame is the axes drawing area in SVG coordinates (origin top-left).
type frame struct {
	x0, y0, w, h float64
}

func frameFor(fig *figure.Figure, ax *figure.Axes) frame {
	return frame{
		x0: ax.Rect.Left * fig.Width,
		y0: (1 - ax.Rect.Bottom - ax.Rect.Height) * fig.Height,
		w:  ax.Rect.Width * fig.Width,
		h:  ax.Rect.Height * fig.Height,
	}
}

func (f frame) right() float64   { return f.x0 + f.w }
func (f frame) bottom() float64  { return f.y0 + f.h }
func (f frame) centerX() float64 { return f.x0 + f.w/2 }
func (f frame) centerY() float64 { return f.y0 + f.h/2 }

func (f frame) px(a *figure.Axis, v float64) float64 { return f.x0 + a.Project(v)*f.w }
func (f frame) py(a *figure.Axis, v float64) float64 { return f.y0 + (1-a.Project(v))*f.h }

// edge is a side an axis draws ticks on: the spine coordinate and the unit
// vector pointing away from the drawing area.
type edge struct {
	pos    float64
	dx, dy float64
}

func (f frame) edges(a *figure.Axis) []edge {
	var out []edge
	switch a.Name {
	case figure.XAxisName:
		if a.Position.OnLow() {
			out = append(out, edge{pos: f.bottom(), dy: 1})
		}
		if a.Position.OnHigh() {
			out = append(out, edge{pos: f.y0, dy: -1})
		}
	case figure.YAxisName:
		if a.Position.OnLow() {
			out = append(out, edge{pos: f.x0, dx: -1})
		}
		if a.Position.OnHigh() {
			out = append(out, edge{pos: f.right(), dx: 1})
		}
	}
	return out
}

// tickSpan splits a tick length into the parts outside and inside the
// drawing area.
func tickSpan(d figure.Direction, length float64) (outward, inward float64) {
	switch d {
	case figure.DirectionOut:
		return length, 0
	case figure.DirectionInOut:
		return length / 2, length / 2
	}
	return 0, length
}

func renderAxes(buf *bytes.Buffer, f frame, ax *figure.Axes, idx int) {
	clipID := fmt.Sprintf("axes-%d-clip", idx)
	fmt.Fprintf(buf, `  <g class="axes" id="axes-%d">`+"\n", idx)
	fmt.Fprintf(buf, `    <defs><clipPath id="%s"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath></defs>`+"\n",
		clipID, f.x0, f.y0, f.w, f.h)
	if ax.Background != "" {
		fmt.Fprintf(buf, `    <rect class="background" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			f.x0, f.y0, f.w, f.h, render.EscapeXML(ax.Background))
	}

	renderGrid(buf, f, ax, ax.YAxis)
	renderGrid(buf, f, ax, ax.XAxis)
	renderLines(buf, f, ax, clipID)
	renderSpines(buf, f, ax)

	xExtent := renderTicks(buf, f, ax.XAxis)
	yExtent := renderTicks(buf, f, ax.YAxis)
	renderAxisLabels(buf, f, ax, xExtent, yExtent)

	buf.WriteString("  </g>\n")
}

func inRange(a *figure.Axis, v float64) bool { return v >= a.Min && v <= a.Max }

func renderGrid(buf *bytes.Buffer, f frame, ax *figure.Axes, a *figure.Axis) {
	g := a.Grid
	if !g.Visible {
		return
	}
	var tiers []*figure.TickSet
	if g.Which&figure.Major != 0 {
		tiers = append(tiers, a.Major)
	}
	if g.Which&figure.Minor != 0 {
		tiers = append(tiers, a.Minor)
	}

	dash := dashAttr(g.Dash)
	for _, tier := range tiers {
		for _, tk := range tier.Ticks {
			if !inRange(a, tk.Value) {
				continue
			}
			var x1, y1, x2, y2 float64
			if a.Name == figure.YAxisName {
				y := f.py(a, tk.Value)
				x1, y1, x2, y2 = f.x0, y, f.right(), y
			} else {
				x := f.px(a, tk.Value)
				x1, y1, x2, y2 = x, f.y0, x, f.bottom()
			}
			fmt.Fprintf(buf, `    <line class="grid grid-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"%s/>`+"\n",
				a.Name, x1, y1, x2, y2, render.EscapeXML(g.Color), g.Width, dash)
		}
	}
}

func renderLines(buf *bytes.Buffer, f frame, ax *figure.Axes, clipID string) {
	for _, l := range ax.Lines {
		pts := make([]string, 0, len(l.X))
		for i := range l.X {
			x, y := l.X[i], l.Y[i]
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			pts = append(pts, fmt.Sprintf("%.2f,%.2f", f.px(ax.XAxis, x), f.py(ax.YAxis, y)))
		}
		if len(pts) == 0 {
			continue
		}
		fmt.Fprintf(buf, `    <polyline class="series" fill="none" stroke="%s" stroke-width="%.2f"%s clip-path="url(#%s)" points="%s">`,
			render.EscapeXML(l.Color), l.Width, dashAttr(l.Dash), clipID, strings.Join(pts, " "))
		if l.Label != "" {
			fmt.Fprintf(buf, "<title>%s</title>", render.EscapeXML(l.Label))
		}
		buf.WriteString("</polyline>\n")
	}
}

func renderSpines(buf *bytes.Buffer, f frame, ax *figure.Axes) {
	for _, sp := range ax.Spines() {
		if !sp.Visible {
			continue
		}
		var x1, y1, x2, y2 float64
		switch sp.Side {
		case figure.Top:
			x1, y1, x2, y2 = f.x0, f.y0, f.right(), f.y0
		case figure.Right:
			x1, y1, x2, y2 = f.right(), f.y0, f.right(), f.bottom()
		case figure.Bottom:
			x1, y1, x2, y2 = f.x0, f.bottom(), f.right(), f.bottom()
		case figure.Left:
			x1, y1, x2, y2 = f.x0, f.y0, f.x0, f.bottom()
		}
		fmt.Fprintf(buf, `    <line class="spine spine-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="square"/>`+"\n",
			sp.Side, x1, y1, x2, y2, render.EscapeXML(sp.Color), sp.Width)
	}
}

// renderTicks draws tick marks on every enabled edge and labels on the first
// one. It returns how far the labels reach past the spine, for placing the
// axis label.
func renderTicks(buf *bytes.Buffer, f frame, a *figure.Axis) float64 {
	edges := f.edges(a)
	var extent float64
	for _, tier := range []*figure.TickSet{a.Minor, a.Major} {
		outward, inward := tickSpan(tier.Params.Direction, tier.Params.Length)
		for i, e := range edges {
			for _, tk := range tier.Ticks {
				if !inRange(a, tk.Value) {
					continue
				}
				x, y := e.pos, f.py(a, tk.Value)
				if a.Name == figure.XAxisName {
					x, y = f.px(a, tk.Value), e.pos
				}
				fmt.Fprintf(buf, `    <line class="tick tick-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
					a.Name, x-e.dx*inward, y-e.dy*inward, x+e.dx*outward, y+e.dy*outward,
					render.EscapeXML(tier.Params.Color), tier.Params.Width)

				if i > 0 || tk.Label == nil || tk.Label.Content == "" {
					continue
				}
				off := outward + tier.Params.Pad
				anchor, baseline := labelAlignment(e)
				writeText(buf, "ticklabel", tk.Label, x+e.dx*off, y+e.dy*off, anchor, baseline, "")
				extent = math.Max(extent, off+labelDepth(a.Name, tk.Label))
			}
		}
	}
	return extent
}

func labelAlignment(e edge) (anchor, baseline string) {
	switch {
	case e.dy > 0:
		return "middle", "hanging"
	case e.dy < 0:
		return "middle", "auto"
	case e.dx < 0:
		return "end", "middle"
	}
	return "start", "middle"
}

// labelDepth estimates how far a tick label extends away from its anchor.
func labelDepth(name figure.AxisName, t *figure.Text) float64 {
	if name == figure.XAxisName {
		return t.Size
	}
	return float64(len([]rune(t.Content))) * t.Size * charWidthRate
}

func renderAxisLabels(buf *bytes.Buffer, f frame, ax *figure.Axes, xExtent, yExtent float64) {
	if t := ax.XAxis.Label; t.Content != "" {
		writeText(buf, "xlabel", t, f.centerX(), f.bottom()+xExtent+labelGap, "middle", "hanging", "")
	}
	if t := ax.YAxis.Label; t.Content != "" {
		x, y := f.x0-yExtent-labelGap, f.centerY()
		writeText(buf, "ylabel", t, x, y, "middle", "auto",
			fmt.Sprintf(` transform="rotate(-90 %.2f %.2f)"`, x, y))
	}
	if t := ax.Title; t.Content != "" {
		writeText(buf, "title", t, f.centerX(), f.y0-titleGap, "middle", "auto", "")
	}
}

func writeText(buf *bytes.Buffer, class string, t *figure.Text, x, y float64, anchor, baseline, extra string) {
	fmt.Fprintf(buf, `    <text class="%s" x="%.2f" y="%.2f" fill="%s" font-family="%s" font-size="%.1f" text-anchor="%s" dominant-baseline="%s"%s>%s</text>`+"\n",
		class, x, y, render.EscapeXML(t.Color), render.EscapeXML(t.Family), t.Size, anchor, baseline, extra,
		render.EscapeXML(t.Content))
}

func dashAttr(d []float64) string {
	if len(d) == 0 {
		return ""
	}
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
}
