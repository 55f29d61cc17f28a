package figure

import (
	"math"
	"strconv"
)

// Locator chooses major tick positions for a data range.
type Locator interface {
	Locate(min, max float64) []float64
}

// MinorLocator chooses minor tick positions given the major ones.
type MinorLocator interface {
	LocateMinor(major []float64, min, max float64) []float64
}

// Formatter turns a tick value into label text.
type Formatter interface {
	Format(v float64) string
}

const defaultMaxTicks = 6

// maxLocatedTicks caps the output of the stepping locators.
const maxLocatedTicks = 1000

// MaxNLocator places at most about N+1 ticks on "nice" steps (1, 2, 2.5 or
// 5 times a power of ten).
type MaxNLocator struct {
	N int
}

// Locate implements Locator. Non-finite limits give no ticks; a range too
// small or too large to step through gives just its endpoints.
func (l MaxNLocator) Locate(min, max float64) []float64 {
	if !finite(min) || !finite(max) {
		return nil
	}
	if !(max > min) {
		return []float64{min}
	}
	n := l.N
	if n <= 0 {
		n = defaultMaxTicks
	}
	// Divide first: max-min overflows for ranges near ±MaxFloat64.
	step := niceStep(max/float64(n) - min/float64(n))
	if !(step > 0) || math.IsInf(step, 0) {
		return []float64{min, max}
	}
	eps := step * 1e-9
	start := math.Ceil((min-eps)/step) * step

	var ticks []float64
	for i := 0; i < maxLocatedTicks; i++ {
		v := start + float64(i)*step
		if v > max+eps || math.IsInf(v, 0) {
			break
		}
		ticks = append(ticks, clean(v))
	}
	return ticks
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	pow := math.Pow(10, exp)
	frac := raw / pow
	var nice float64
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 2.5:
		nice = 2.5
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * pow
}

// clean rounds away floating point noise such as 0.30000000000000004.
func clean(v float64) float64 {
	r := math.Round(v*1e9) / 1e9
	if !finite(r) {
		return v
	}
	if r == 0 {
		return 0
	}
	return r
}

// AutoMinorLocator subdivides each major interval into N parts. N defaults
// to 5.
type AutoMinorLocator struct {
	N int
}

// LocateMinor implements MinorLocator. It gives no ticks when the
// subdivision would be degenerate or denser than maxLocatedTicks.
func (l AutoMinorLocator) LocateMinor(major []float64, min, max float64) []float64 {
	if len(major) < 2 || !finite(min) || !finite(max) {
		return nil
	}
	n := l.N
	if n <= 0 {
		n = 5
	}
	majorStep := major[1] - major[0]
	step := majorStep / float64(n)
	if !(step > 0) || !finite(majorStep) || !((max-min)/step <= maxLocatedTicks) {
		return nil
	}
	eps := step * 1e-6
	start := major[0] - math.Floor((major[0]-min+eps)/step)*step
	if !finite(start) {
		return nil
	}

	var ticks []float64
	for i := 0; i < maxLocatedTicks; i++ {
		v := start + float64(i)*step
		if v > max+eps {
			break
		}
		if math.Abs(math.Remainder(v-major[0], majorStep)) < eps {
			continue
		}
		ticks = append(ticks, clean(v))
	}
	return ticks
}

// FixedLocator returns a fixed list of positions, dropping those outside
// the axis limits.
type FixedLocator struct {
	Values []float64
}

// Locate implements Locator.
func (l FixedLocator) Locate(min, max float64) []float64 {
	var out []float64
	for _, v := range l.Values {
		if v >= min && v <= max {
			out = append(out, v)
		}
	}
	return out
}

// LocateMinor implements MinorLocator.
func (l FixedLocator) LocateMinor(_ []float64, min, max float64) []float64 {
	return l.Locate(min, max)
}

// NullLocator produces no ticks.
type NullLocator struct{}

func (NullLocator) Locate(float64, float64) []float64                 { return nil }
func (NullLocator) LocateMinor([]float64, float64, float64) []float64 { return nil }

// ScalarFormatter prints the shortest decimal representation of a value,
// switching to exponent form from 1e16 up.
type ScalarFormatter struct{}

// Format implements Formatter.
func (ScalarFormatter) Format(v float64) string {
	if math.Abs(v) >= 1e16 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(clean(v), 'f', -1, 64)
}

// EmptyFormatter labels every tick with an empty string.
type EmptyFormatter struct{}

// Format implements Formatter.
func (EmptyFormatter) Format(float64) string { return "" }
