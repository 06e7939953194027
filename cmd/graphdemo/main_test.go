package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/odvcencio/furry-graph/agent"
	"github.com/odvcencio/furry-graph/config"
	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/state"
	"github.com/odvcencio/furry-graph/terminal"
	"github.com/odvcencio/furry-graph/widgets"
)

func mustDashboard(t *testing.T, yaml string) *dashboard {
	t.Helper()
	cfg := config.Default()
	if yaml != "" {
		var err error
		if cfg, err = config.Parse([]byte(yaml)); err != nil {
			t.Fatalf("parse: %v", err)
		}
	}
	dash, err := newDashboard(cfg)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	return dash
}

func TestParseSize(t *testing.T) {
	if w, h, err := parseSize("80X24"); err != nil || w != 80 || h != 24 {
		t.Fatalf("parseSize = %d, %d, %v", w, h, err)
	}
	for _, bad := range []string{"", "80", "x24", "80x", "0x5", "-3x4", "axb"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Fatalf("parseSize(%q) should fail", bad)
		}
	}
}

func TestSnapshotShowsPanels(t *testing.T) {
	var out bytes.Buffer
	if err := snapshot(&out, mustDashboard(t, ""), 40, 20, 3, false); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	text := out.String()
	for _, want := range []string{"signals · space pause · q quit", "┌─area", "┌─bars", "┌─history"} {
		if !strings.Contains(text, want) {
			t.Fatalf("snapshot missing %q:\n%s", want, text)
		}
	}
}

func TestSnapshotJSON(t *testing.T) {
	var out bytes.Buffer
	dash := mustDashboard(t, "layout: grid\ncolumns: 2\npanels:\n  - title: a\n  - title: b\n    kind: line\n  - title: c\n")
	if err := snapshot(&out, dash, 30, 13, 0, true); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	var snap agent.Snapshot
	if err := json.Unmarshal(out.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if snap.Width != 30 || snap.Height != 13 || snap.Frame != 1 {
		t.Fatalf("snapshot header = %d x %d frame %d", snap.Width, snap.Height, snap.Frame)
	}
	if errs := snap.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestDashboardKeys(t *testing.T) {
	dash := mustDashboard(t, "")
	for _, msg := range []runtime.KeyMsg{
		{Key: terminal.KeyRune, Rune: 'q'},
		{Key: terminal.KeyEscape},
		{Key: terminal.KeyCtrlC},
	} {
		res := dash.HandleMessage(msg)
		if len(res.Commands) != 1 {
			t.Fatalf("%+v: commands = %v, want Quit", msg, res.Commands)
		}
		if _, ok := res.Commands[0].(runtime.Quit); !ok {
			t.Fatalf("%+v: command = %T, want Quit", msg, res.Commands[0])
		}
	}
	if res := dash.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'x'}); res.Handled {
		t.Fatal("unexpected handling of x")
	}
}

func TestDashboardPauseStopsTicks(t *testing.T) {
	dash := mustDashboard(t, "panels:\n  - title: a\n    speed: 0.5\n")
	f := dash.feeds[0]

	dash.HandleMessage(runtime.TickMsg{})
	if got := f.phase.Get(); got != 0.5 {
		t.Fatalf("phase = %v, want 0.5", got)
	}

	dash.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: ' '})
	if !strings.Contains(dash.status.Get(), "paused") {
		t.Fatalf("status = %q, want paused", dash.status.Get())
	}
	if res := dash.HandleMessage(runtime.TickMsg{}); res.Handled {
		t.Fatal("tick handled while paused")
	}
	if got := f.phase.Get(); got != 0.5 {
		t.Fatalf("phase = %v after paused tick, want 0.5", got)
	}
}

func TestSeriesFeedFillsFromTheRight(t *testing.T) {
	dash := mustDashboard(t, "panels:\n  - title: s\n    kind: line\n    source: series\n    wave: square\n    fill: true\n")
	a, err := agent.New(agent.Config{Root: dash, Width: 8, Height: 6})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	a.Send(runtime.TickMsg{})
	a.Send(runtime.TickMsg{})
	a.Frame()

	if got := dash.feeds[0].series.Len(); got != 2 {
		t.Fatalf("series len = %d, want 2", got)
	}
	// The panel interior is 6x3 starting at row 2; the two square-wave
	// highs fill the two rightmost columns.
	lines := strings.Split(a.CaptureText(), "\n")
	if len(lines) < 6 || lines[2] != "│    ..│" {
		t.Fatalf("capture:\n%s", a.CaptureText())
	}
}

func TestLoadDashboardTestdata(t *testing.T) {
	dash, err := loadDashboard("testdata/dashboard.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(dash.graphs) != 4 || len(dash.feeds) != 4 {
		t.Fatalf("graphs = %d feeds = %d, want 4", len(dash.graphs), len(dash.feeds))
	}
	if dash.feeds[3].series == nil {
		t.Fatal("expected history panel to be series backed")
	}

	var out bytes.Buffer
	if err := snapshot(&out, dash, 60, 21, 5, false); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Signals · space pause · q quit") {
		t.Fatalf("snapshot:\n%s", out.String())
	}
}

func TestStatusCountsFailuresInSameFrame(t *testing.T) {
	short := func(width, height int) []int { return make([]int, width-1) }
	d := &dashboard{title: "t", status: state.NewSignal("")}
	broken := widgets.NewGraph(graph.NewLine(short, 1))
	d.graphs = []*widgets.Graph{broken}
	d.assemble(widgets.NewPanel("broken", broken))

	a, err := agent.New(agent.Config{Root: d, Width: 40, Height: 6})
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	a.Frame()
	if broken.Err() == nil {
		t.Fatal("expected paint error")
	}
	if got := a.CaptureText(); !strings.HasPrefix(got, "t · 1 failing · space pause") {
		t.Fatalf("status after one frame:\n%s", got)
	}
}
