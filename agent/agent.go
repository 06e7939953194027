// Package agent drives a widget tree headlessly. It renders frames into a
// simulated terminal and reports what ended up on screen, for tests and
// for the snapshot mode of the demo.
package agent

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-graph/backend/sim"
	"github.com/odvcencio/furry-graph/runtime"
)

// ErrWidgetNotFound is returned when a lookup matches nothing.
var ErrWidgetNotFound = errors.New("widget not found")

// Agent owns a screen and a simulation backend.
type Agent struct {
	mu     sync.Mutex
	sim    *sim.Backend
	screen *runtime.Screen
	frames int
}

// Config configures an Agent.
type Config struct {
	// Root is the widget tree to drive.
	Root runtime.Widget

	// Sim is the simulation backend. If nil, one will be created.
	Sim *sim.Backend

	// Width and Height set the terminal dimensions (default 80x24).
	Width, Height int
}

// New initializes the simulated terminal and mounts cfg.Root.
// Call Close when done.
func New(cfg Config) (*Agent, error) {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	s := cfg.Sim
	if s == nil {
		s = sim.New(width, height)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}
	w, h := s.Size()
	screen := runtime.NewScreen(w, h)
	screen.SetRoot(cfg.Root)
	screen.Buffer().MarkAllDirty()
	return &Agent{sim: s, screen: screen}, nil
}

// Close unmounts the tree and shuts the backend down.
func (a *Agent) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screen.SetRoot(nil)
	a.sim.Fini()
}

// Backend returns the underlying simulation backend.
func (a *Agent) Backend() *sim.Backend {
	if a == nil {
		return nil
	}
	return a.sim
}

// Screen returns the driven screen.
func (a *Agent) Screen() *runtime.Screen {
	if a == nil {
		return nil
	}
	return a.screen
}

// Send delivers msg to the tree as the app loop would.
func (a *Agent) Send(msg runtime.Message) runtime.HandleResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	if m, ok := msg.(runtime.ResizeMsg); ok {
		a.sim.Resize(m.Width, m.Height)
		a.screen.Resize(m.Width, m.Height)
		return runtime.Handled()
	}
	return a.screen.HandleMessage(msg)
}

// Frame renders the tree, flushes the changed cells, and shows them.
// It returns the number of cells written.
func (a *Agent) Frame() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screen.Render()
	n := runtime.Flush(a.sim, a.screen.Buffer())
	a.sim.Show()
	a.frames++
	return n
}

// Snapshot returns the shown text and the widget tree.
func (a *Agent) Snapshot() Snapshot {
	if a == nil {
		return Snapshot{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	snap := Snapshot{
		Timestamp: time.Now(),
		Frame:     a.frames,
		Text:      a.sim.Capture(),
	}
	snap.Width, snap.Height = a.screen.Size()
	if root := a.screen.Root(); root != nil {
		snap.Widgets = []WidgetInfo{describe(root)}
	}
	return snap
}

type identified interface {
	ID() ulid.ULID
}

type titled interface {
	Title() string
}

type failing interface {
	Err() error
}

func describe(w runtime.Widget) WidgetInfo {
	info := WidgetInfo{Kind: kindOf(w)}
	if id, ok := w.(identified); ok {
		info.ID = id.ID().String()
	}
	if t, ok := w.(titled); ok {
		info.Title = t.Title()
	}
	if f, ok := w.(failing); ok {
		if err := f.Err(); err != nil {
			info.Error = err.Error()
		}
	}
	if bp, ok := w.(runtime.BoundsProvider); ok {
		info.Bounds = bp.Bounds()
	}
	if cp, ok := w.(runtime.ChildProvider); ok {
		for _, child := range cp.ChildWidgets() {
			info.Children = append(info.Children, describe(child))
		}
	}
	return info
}

// kindOf returns the widget's type name without package or pointer.
func kindOf(w runtime.Widget) string {
	name := fmt.Sprintf("%T", w)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// FindByTitle returns the first widget with the given title.
func (a *Agent) FindByTitle(title string) (WidgetInfo, error) {
	if w, ok := find(a.Snapshot().Widgets, func(w WidgetInfo) bool { return w.Title == title }); ok {
		return w, nil
	}
	return WidgetInfo{}, fmt.Errorf("%w: title %q", ErrWidgetNotFound, title)
}

// FindByKind returns every widget of the given kind, in tree order.
func (a *Agent) FindByKind(kind string) []WidgetInfo {
	var out []WidgetInfo
	find(a.Snapshot().Widgets, func(w WidgetInfo) bool {
		if w.Kind == kind {
			out = append(out, w)
		}
		return false
	})
	return out
}

func find(ws []WidgetInfo, match func(WidgetInfo) bool) (WidgetInfo, bool) {
	for _, w := range ws {
		if match(w) {
			return w, true
		}
		if found, ok := find(w.Children, match); ok {
			return found, true
		}
	}
	return WidgetInfo{}, false
}

// ContainsText checks if the given text appears on screen.
func (a *Agent) ContainsText(text string) bool {
	if a == nil || a.sim == nil {
		return false
	}
	return a.sim.ContainsText(text)
}

// FindText returns the position of text on screen, or (-1, -1) if not found.
func (a *Agent) FindText(text string) (x, y int) {
	if a == nil || a.sim == nil {
		return -1, -1
	}
	return a.sim.FindText(text)
}

// CaptureText returns the raw text content of the screen.
func (a *Agent) CaptureText() string {
	if a == nil || a.sim == nil {
		return ""
	}
	return a.sim.Capture()
}
