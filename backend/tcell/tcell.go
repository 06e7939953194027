// Package tcell adapts a tcell screen to backend.Backend.
package tcell

import (
	"fmt"
	"sync/atomic"

	tc "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-graph/backend"
	"github.com/odvcencio/furry-graph/terminal"
)

// Backend draws to a tcell screen.
type Backend struct {
	screen tc.Screen
	closed atomic.Bool
}

// New creates a backend for the controlling terminal.
func New() (*Backend, error) {
	screen, err := tc.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing screen, such as a simulation screen.
func NewWithScreen(screen tc.Screen) *Backend {
	return &Backend{screen: screen}
}

// Screen returns the wrapped tcell screen.
func (b *Backend) Screen() tc.Screen {
	return b.screen
}

// Init initializes the terminal.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	b.closed.Store(false)
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	if b.closed.Swap(true) {
		return
	}
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// SetContent writes one cell.
func (b *Backend) SetContent(x, y int, r rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, r, comb, style)
}

// SetRow writes a run of cells starting at (startX, y).
func (b *Backend) SetRow(y int, startX int, cells []backend.Cell) {
	for i, cell := range cells {
		b.screen.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
	}
}

// SetRect writes a row-major block of width*height cells at (x, y).
func (b *Backend) SetRect(x, y, width, height int, cells []backend.Cell) {
	for row := 0; row < height; row++ {
		line := cells[row*width : (row+1)*width]
		for col, cell := range line {
			b.screen.SetContent(x+col, y+row, cell.Rune, nil, cell.Style)
		}
	}
}

// Show flushes pending changes.
func (b *Backend) Show() {
	b.screen.Show()
}

// Sync repaints the whole terminal.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// HideCursor hides the terminal cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// PollEvent waits for the next key or resize event.
// Events the runtime does not understand are skipped.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if out := convertEvent(ev); out != nil {
			return out
		}
	}
}

func convertEvent(ev tc.Event) terminal.Event {
	switch e := ev.(type) {
	case *tc.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tc.EventKey:
		mods := e.Modifiers()
		out := terminal.KeyEvent{
			Alt:   mods&tc.ModAlt != 0,
			Ctrl:  mods&tc.ModCtrl != 0,
			Shift: mods&tc.ModShift != 0,
		}
		switch e.Key() {
		case tc.KeyRune:
			out.Key = terminal.KeyRune
			out.Rune = e.Rune()
		case tc.KeyEnter:
			out.Key = terminal.KeyEnter
		case tc.KeyEscape:
			out.Key = terminal.KeyEscape
		case tc.KeyTab:
			out.Key = terminal.KeyTab
		case tc.KeyBackspace, tc.KeyBackspace2:
			out.Key = terminal.KeyBackspace
		case tc.KeyUp:
			out.Key = terminal.KeyUp
		case tc.KeyDown:
			out.Key = terminal.KeyDown
		case tc.KeyLeft:
			out.Key = terminal.KeyLeft
		case tc.KeyRight:
			out.Key = terminal.KeyRight
		case tc.KeyCtrlC:
			out.Key = terminal.KeyCtrlC
			out.Ctrl = true
		default:
			return nil
		}
		return out
	}
	return nil
}

var (
	_ backend.Backend    = (*Backend)(nil)
	_ backend.RowWriter  = (*Backend)(nil)
	_ backend.RectWriter = (*Backend)(nil)
)
