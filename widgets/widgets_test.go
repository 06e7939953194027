package widgets

import (
	"strings"

	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/runtime"
)

// renderString lays w out over a width by height screen, renders it, and
// returns the buffer one line per row.
func renderString(w runtime.Widget, width, height int) string {
	screen := runtime.NewScreen(width, height)
	screen.SetRoot(w)
	screen.Render()
	return bufferString(screen.Buffer())
}

func bufferString(buf *runtime.Buffer) string {
	w, h := buf.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r := buf.Get(x, y).Rune; r != 0 {
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// values returns a sampling function that reports vals, padded with
// zeros or cut to the requested width.
func values(vals ...int) graph.SampleFunc {
	return func(width, height int) []int {
		out := make([]int, width)
		copy(out, vals)
		return out
	}
}

// full returns a sampling function at the top of the region.
func full() graph.SampleFunc {
	return func(width, height int) []int {
		out := make([]int, width)
		for i := range out {
			out[i] = height
		}
		return out
	}
}
