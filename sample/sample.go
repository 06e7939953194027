// Package sample builds graph sampling functions from waves and series.
package sample

import (
	"fmt"
	"math"
	"strings"

	"github.com/odvcencio/furry-graph/graph"
)

// Shape is a periodic waveform.
type Shape int

const (
	Sine Shape = iota
	Square
	Triangle
	Sawtooth
)

var shapeNames = [...]string{"sine", "square", "triangle", "sawtooth"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape parses a shape name, ignoring case.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown wave shape %q", name)
}

// At evaluates the shape at t, measured in periods. The result is in [-1, 1].
func (s Shape) At(t float64) float64 {
	frac := t - math.Floor(t)
	switch s {
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 1 - 4*math.Abs(frac-0.5)
	case Sawtooth:
		return 2*frac - 1
	default:
		return math.Sin(2 * math.Pi * t)
	}
}

// Scale maps v from [lo, hi] onto [0, height], rounding and clamping.
// A degenerate range maps everything to 0.
func Scale(v, lo, hi float64, height int) int {
	if hi <= lo || height <= 0 || math.IsNaN(v) {
		return 0
	}
	n := int(math.Round((v - lo) / (hi - lo) * float64(height)))
	return min(max(n, 0), height)
}

// Wave is a periodic signal spread across the graph width.
type Wave struct {
	Shape Shape
	// Period is the number of samples per cycle. Values below 1 are
	// treated as 1.
	Period float64
}

// Func returns a sampling function for the wave. offset, if not nil, is
// read once per paint and shifts the wave by that many periods.
func (w Wave) Func(offset func() float64) graph.SampleFunc {
	period := max(w.Period, 1)
	return func(width, height int) []int {
		shift := 0.0
		if offset != nil {
			shift = offset()
		}
		out := make([]int, max(width, 0))
		for i := range out {
			out[i] = Scale(w.Shape.At(float64(i)/period+shift), -1, 1, height)
		}
		return out
	}
}
