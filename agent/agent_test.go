package agent

import (
	"errors"
	"strings"
	"testing"

	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/widgets"
)

func full(width, height int) []int {
	out := make([]int, width)
	for i := range out {
		out[i] = height
	}
	return out
}

func short(width, height int) []int {
	return make([]int, width+1)
}

func newTestAgent(t *testing.T, root runtime.Widget, w, h int) *Agent {
	t.Helper()
	a, err := New(Config{Root: root, Width: w, Height: h})
	if err != nil {
		t.Fatalf("new agent: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestAgent_FrameAndSnapshot(t *testing.T) {
	root := widgets.NewVStack(
		widgets.NewPanel("area", widgets.NewGraph(graph.NewQuadrant(full))),
		widgets.NewPanel("broken", widgets.NewGraph(graph.NewLine(short, 1))),
	)
	a := newTestAgent(t, root, 12, 10)

	if n := a.Frame(); n != 12*10 {
		t.Fatalf("first frame wrote %d cells, want %d", n, 12*10)
	}
	if !a.ContainsText("┌─area─────┐") {
		t.Fatalf("expected titled border, got\n%s", a.CaptureText())
	}
	if !a.ContainsText("│██████████│") {
		t.Fatalf("expected full area row, got\n%s", a.CaptureText())
	}
	if x, y := a.FindText("broken"); x != 2 || y != 5 {
		t.Fatalf("FindText(broken) = (%d, %d), want (2, 5)", x, y)
	}

	snap := a.Snapshot()
	if snap.Frame != 1 || snap.Width != 12 || snap.Height != 10 {
		t.Fatalf("snapshot header = %+v", snap)
	}
	if got := a.FindByKind("Graph"); len(got) != 2 {
		t.Fatalf("graphs = %d, want 2", len(got))
	}
	failed := snap.Errors()
	if len(failed) != 1 || failed[0].Kind != "Graph" || !strings.Contains(failed[0].Error, "returned 11 samples") {
		t.Fatalf("errors = %+v", failed)
	}
	if failed[0].ID == "" {
		t.Fatal("expected graph id in snapshot")
	}

	if n := a.Frame(); n != 0 {
		t.Fatalf("unchanged frame wrote %d cells, want 0", n)
	}
}

func TestAgent_FindByTitle(t *testing.T) {
	root := widgets.NewPanel("only", widgets.NewGraph(graph.NewQuadrant(full)))
	a := newTestAgent(t, root, 8, 6)
	a.Frame()

	info, err := a.FindByTitle("only")
	if err != nil {
		t.Fatalf("FindByTitle: %v", err)
	}
	if info.Kind != "Panel" || info.Bounds != (runtime.Rect{Width: 8, Height: 6}) {
		t.Fatalf("info = %+v", info)
	}
	if len(info.Children) != 1 || info.Children[0].Bounds != (runtime.Rect{X: 1, Y: 1, Width: 6, Height: 4}) {
		t.Fatalf("children = %+v", info.Children)
	}
	if _, err := a.FindByTitle("missing"); !errors.Is(err, ErrWidgetNotFound) {
		t.Fatalf("err = %v, want ErrWidgetNotFound", err)
	}
}

func TestAgent_Resize(t *testing.T) {
	root := widgets.NewGraph(graph.NewQuadrant(full))
	a := newTestAgent(t, root, 4, 3)
	a.Frame()

	if res := a.Send(runtime.ResizeMsg{Width: 6, Height: 2}); !res.Handled {
		t.Fatal("expected resize to be handled")
	}
	a.Frame()
	if got, want := a.CaptureText(), "██████\n██████"; got != want {
		t.Fatalf("capture = %q, want %q", got, want)
	}
	if snap := a.Snapshot(); snap.Width != 6 || snap.Height != 2 {
		t.Fatalf("snapshot size = %dx%d, want 6x2", snap.Width, snap.Height)
	}
}
