// Package backend defines the terminal surface widgets are flushed to.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-graph/terminal"
)

// Style is the visual style of a cell.
type Style = tcell.Style

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return tcell.StyleDefault
}

// Cell is a single glyph with its style.
type Cell struct {
	Rune  rune
	Style Style
}

// Backend is a terminal the runtime can draw to and read events from.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, r rune, comb []rune, style Style)
	Show()
	Sync()
	HideCursor()
	// PollEvent blocks until an event is available.
	// It returns nil once the backend has been finalized.
	PollEvent() terminal.Event
}
