// Package sim provides a headless backend for tests and snapshots.
package sim

import (
	"strings"
	"unicode/utf8"

	tc "github.com/gdamore/tcell/v2"

	backendtcell "github.com/odvcencio/furry-graph/backend/tcell"
)

// Backend is a tcell simulation screen wrapped as a backend.Backend.
type Backend struct {
	*backendtcell.Backend
	screen        tc.SimulationScreen
	width, height int
}

// New creates a simulated terminal of the given size.
// The screen is initialized lazily by Init.
func New(width, height int) *Backend {
	screen := tc.NewSimulationScreen("UTF-8")
	b := &Backend{
		Backend: backendtcell.NewWithScreen(screen),
		screen:  screen,
	}
	b.width, b.height = width, height
	return b
}

// Init initializes the simulation screen and applies the configured size.
func (b *Backend) Init() error {
	if err := b.Backend.Init(); err != nil {
		return err
	}
	b.screen.SetSize(b.width, b.height)
	return nil
}

// Resize changes the simulated terminal size.
func (b *Backend) Resize(width, height int) {
	b.width, b.height = width, height
	b.screen.SetSize(width, height)
}

// InjectKey queues a printable key press.
func (b *Backend) InjectKey(r rune) {
	b.screen.InjectKey(tc.KeyRune, r, tc.ModNone)
}

// Capture returns the shown screen contents, one line per row,
// with trailing blanks removed.
func (b *Backend) Capture() string {
	cells, width, height := b.screen.GetContents()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		var line strings.Builder
		for x := 0; x < width; x++ {
			idx := y*width + x
			if idx >= len(cells) || len(cells[idx].Runes) == 0 {
				line.WriteRune(' ')
				continue
			}
			line.WriteRune(cells[idx].Runes[0])
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ContainsText reports whether text appears on a single captured line.
func (b *Backend) ContainsText(text string) bool {
	x, _ := b.FindText(text)
	return x >= 0
}

// FindText returns the cell position of the first occurrence of text,
// or (-1, -1).
func (b *Backend) FindText(text string) (x, y int) {
	if text == "" {
		return -1, -1
	}
	for row, line := range strings.Split(b.Capture(), "\n") {
		if i := strings.Index(line, text); i >= 0 {
			return utf8.RuneCountInString(line[:i]), row
		}
	}
	return -1, -1
}
