package main

import (
	"fmt"
	"strings"

	"github.com/odvcencio/furry-graph/config"
	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/sample"
	"github.com/odvcencio/furry-graph/state"
	"github.com/odvcencio/furry-graph/terminal"
	"github.com/odvcencio/furry-graph/widgets"
)

// feed moves one panel's data forward on every tick.
type feed struct {
	wave   sample.Wave
	speed  float64
	phase  *state.Signal[float64]
	series *sample.Series
}

func (f *feed) step() {
	if f.series != nil {
		t := f.phase.Get()
		f.series.Push(f.wave.Shape.At(t))
		f.phase.Set(t + 1/f.wave.Period)
		return
	}
	if f.speed != 0 {
		f.phase.Update(func(p float64) float64 { return p + f.speed })
	}
}

// source returns the sampling function and the value the graph watches.
func (f *feed) source() (graph.SampleFunc, state.Subscribable) {
	if f.series != nil {
		return f.series.Func(-1, 1), f.series
	}
	return f.wave.Func(f.phase.Get), f.phase
}

// dashboard is the demo's root widget: a status line above the panels.
type dashboard struct {
	widgets.Base
	title  string
	header *widgets.SignalLabel
	body   *widgets.Stack
	status *state.Signal[string]
	feeds  []*feed
	graphs []*widgets.Graph
	paused bool
}

func newDashboard(cfg *config.Config) (*dashboard, error) {
	d := &dashboard{
		title:  cfg.Title,
		status: state.NewSignal(""),
	}
	d.status.SetEqualFunc(state.EqualComparable[string])

	panels := make([]runtime.Widget, 0, len(cfg.Panels))
	for i, p := range cfg.Panels {
		g, err := d.addPanel(p)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		panels = append(panels, widgets.NewPanel(p.Title, g))
	}

	var content runtime.Widget
	switch cfg.Layout {
	case config.Horizontal:
		content = widgets.NewHStack(panels...)
	case config.Grid:
		grid := widgets.NewGrid(cfg.Columns)
		for _, p := range panels {
			grid.Append(p)
		}
		content = grid
	default:
		content = widgets.NewVStack(panels...)
	}

	d.assemble(content)
	return d, nil
}

// assemble stacks the status line above content.
func (d *dashboard) assemble(content runtime.Widget) {
	d.header = widgets.NewSignalLabel(d.status)
	d.body = widgets.NewVStack(d.header, content)
	d.refreshStatus()
}

func (d *dashboard) addPanel(p config.Panel) (*widgets.Graph, error) {
	f := &feed{
		wave:  sample.Wave{Shape: p.Shape(), Period: p.Period},
		speed: p.Speed,
		phase: state.NewSignal(0.0),
	}
	if p.Source == config.SourceSeries {
		f.series = sample.NewSeries(0)
	}
	fn, src := f.source()

	var r graph.Renderer
	switch p.Kind {
	case config.KindLine:
		glyph, err := p.GlyphRune()
		if err != nil {
			return nil, err
		}
		r = graph.NewLine(fn, p.StrokeWidth(), graph.WithFill(p.Fill), graph.WithGlyph(glyph))
	default:
		r = graph.NewQuadrant(fn)
	}
	g := widgets.NewGraph(r, widgets.WithSource(src))
	d.feeds = append(d.feeds, f)
	d.graphs = append(d.graphs, g)
	return g, nil
}

// advance steps every feed once.
func (d *dashboard) advance() {
	for _, f := range d.feeds {
		f.step()
	}
}

func (d *dashboard) refreshStatus() {
	var parts []string
	if d.title != "" {
		parts = append(parts, d.title)
	}
	if d.paused {
		parts = append(parts, "paused")
	}
	failed := 0
	for _, g := range d.graphs {
		if g.Err() != nil {
			failed++
		}
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failing", failed))
	}
	parts = append(parts, "space pause", "q quit")
	d.status.Set(strings.Join(parts, " · "))
}

func (d *dashboard) Measure(constraints runtime.Constraints) runtime.Size {
	return d.body.Measure(constraints)
}

func (d *dashboard) Layout(bounds runtime.Rect) {
	d.Base.Layout(bounds)
	d.body.Layout(bounds)
}

// Render paints the panels first so the status line can count the ones
// that failed in this frame.
func (d *dashboard) Render(ctx runtime.RenderContext) {
	d.body.Render(ctx)
	d.refreshStatus()
	if d.header.Refresh() {
		d.header.Render(ctx)
	}
}

func (d *dashboard) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.KeyMsg:
		switch {
		case m.Key == terminal.KeyEscape, m.Key == terminal.KeyCtrlC,
			m.Key == terminal.KeyRune && (m.Rune == 'q' || m.Rune == 'Q'):
			return runtime.WithCommand(runtime.Quit{})
		case m.Key == terminal.KeyRune && m.Rune == ' ':
			d.paused = !d.paused
			d.refreshStatus()
			return runtime.Handled()
		}
	case runtime.TickMsg:
		if d.paused {
			return runtime.Unhandled()
		}
		d.advance()
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

func (d *dashboard) ChildWidgets() []runtime.Widget {
	return []runtime.Widget{d.body}
}
