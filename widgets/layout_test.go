package widgets

import (
	"strings"
	"testing"

	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/state"
)

func TestPanel_BorderAndTitle(t *testing.T) {
	line := graph.NewLine(values(0, 1, 2, 3, 3), 1, graph.WithGlyph('#'), graph.WithFill(true))
	panel := NewPanel("t", NewGraph(line))
	want := "" +
		"┌─t───┐\n" +
		"│   ##│\n" +
		"│  ###│\n" +
		"│ ####│\n" +
		"└─────┘\n"
	if got := renderString(panel, 7, 5); got != want {
		t.Fatalf("render =\n%s\nwant\n%s", got, want)
	}
	if got := panel.Measure(runtime.Unbounded()); got != (runtime.Size{Width: 5, Height: 5}) {
		t.Fatalf("measure = %+v, want 5x5", got)
	}
}

func TestPanel_UnchangedRenderLeavesBufferClean(t *testing.T) {
	screen := runtime.NewScreen(10, 4)
	screen.SetRoot(NewPanel("area", NewGraph(graph.NewQuadrant(full()))))
	screen.Render()
	buf := screen.Buffer()
	buf.ClearDirty()

	screen.Render()
	if n := buf.DirtyCount(); n != 0 {
		t.Fatalf("dirty cells after unchanged render = %d (rect %+v), want 0", n, buf.DirtyRect())
	}
	if got := bufferString(buf); !strings.HasPrefix(got, "┌─area───┐\n") {
		t.Fatalf("render =\n%s", got)
	}
}

func TestStack_GrowsFlexibleChildren(t *testing.T) {
	label := NewSignalLabel(state.NewSignal("x"))
	g := NewGraph(graph.NewQuadrant(full()))
	stack := NewVStack(label, g)
	stack.Layout(runtime.Rect{Width: 5, Height: 6})

	if got, want := label.Bounds(), (runtime.Rect{Width: 5, Height: 1}); got != want {
		t.Fatalf("label bounds = %+v, want %+v", got, want)
	}
	if got, want := g.Bounds(), (runtime.Rect{Y: 1, Width: 5, Height: 5}); got != want {
		t.Fatalf("graph bounds = %+v, want %+v", got, want)
	}
}

func TestStack_ShrinksBelowMinimum(t *testing.T) {
	a := NewGraph(graph.NewQuadrant(full()))
	b := NewGraph(graph.NewQuadrant(full()))
	stack := NewHStack(a, b)
	stack.Layout(runtime.Rect{Width: 4, Height: 3})

	if got := a.Bounds(); got != (runtime.Rect{Width: 2, Height: 3}) {
		t.Fatalf("first bounds = %+v", got)
	}
	if got := b.Bounds(); got != (runtime.Rect{X: 2, Width: 2, Height: 3}) {
		t.Fatalf("second bounds = %+v", got)
	}
}

func TestStack_BlanksUncoveredCells(t *testing.T) {
	label := NewSignalLabel(state.NewSignal("ab"))
	stack := NewVStack(label)
	stack.Gap = 1

	screen := runtime.NewScreen(2, 3)
	screen.Buffer().Fill(screen.Bounds(), '?', screen.Buffer().Get(0, 0).Style)
	screen.SetRoot(stack)
	screen.Render()
	if got := bufferString(screen.Buffer()); got != "ab\n  \n  \n" {
		t.Fatalf("render = %q", got)
	}
}

func TestGrid_AppendPlacesRowByRow(t *testing.T) {
	grid := NewGrid(2)
	children := []*Graph{
		NewGraph(graph.NewQuadrant(full())),
		NewGraph(graph.NewQuadrant(full())),
		NewGraph(graph.NewQuadrant(full())),
	}
	for _, c := range children {
		grid.Append(c)
	}
	if grid.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", grid.Rows())
	}
	grid.Layout(runtime.Rect{Width: 11, Height: 6})

	want := []runtime.Rect{
		{Width: 6, Height: 3},
		{X: 6, Width: 5, Height: 3},
		{Y: 3, Width: 6, Height: 3},
	}
	for i, c := range children {
		if got := c.Bounds(); got != want[i] {
			t.Fatalf("child %d bounds = %+v, want %+v", i, got, want[i])
		}
	}
	if got := grid.Measure(runtime.Unbounded()); got != (runtime.Size{Width: 6, Height: 6}) {
		t.Fatalf("measure = %+v, want 6x6", got)
	}
}

func TestGrid_SpanWithGap(t *testing.T) {
	grid := NewGrid(2)
	grid.Gap = 1
	wide := NewGraph(graph.NewQuadrant(full()))
	grid.Add(wide, 0, 0, 1, 2)
	grid.Layout(runtime.Rect{X: 1, Y: 1, Width: 9, Height: 4})
	if got, want := wide.Bounds(), (runtime.Rect{X: 1, Y: 1, Width: 9, Height: 4}); got != want {
		t.Fatalf("span bounds = %+v, want %+v", got, want)
	}
}
