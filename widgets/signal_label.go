package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-graph/backend"
	"github.com/odvcencio/furry-graph/runtime"
	"github.com/odvcencio/furry-graph/state"
)

// SignalLabel is a one-line label bound to a string signal, used for
// dashboard titles and status lines.
type SignalLabel struct {
	Component
	source    state.Readable[string]
	text      string
	style     backend.Style
	alignment Alignment
	mounted   bool
}

// NewSignalLabel creates a new signal-backed label.
func NewSignalLabel(source state.Readable[string]) *SignalLabel {
	label := &SignalLabel{
		source:    source,
		style:     backend.DefaultStyle(),
		alignment: AlignLeft,
	}
	if source != nil {
		label.text = source.Get()
	}
	return label
}

// Text returns the current label text.
func (s *SignalLabel) Text() string {
	return s.text
}

// Refresh reads the source now rather than waiting for the scheduled
// change notification. It reports whether the text changed.
func (s *SignalLabel) Refresh() bool {
	if s.source == nil {
		return false
	}
	text := s.source.Get()
	if text == s.text {
		return false
	}
	s.text = text
	s.Base.Invalidate()
	return true
}

// SetStyle sets the label style.
func (s *SignalLabel) SetStyle(style backend.Style) {
	s.style = style
}

// SetAlignment sets text alignment.
func (s *SignalLabel) SetAlignment(align Alignment) {
	s.alignment = align
}

// Measure returns one row as wide as the text.
func (s *SignalLabel) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{
		Width:  runewidth.StringWidth(s.text),
		Height: 1,
	})
}

// Flex lets the label stretch across its row.
func (s *SignalLabel) Flex() runtime.Flex {
	return runtime.Flex{GrowX: 1, ShrinkX: 1}
}

// Render draws the label on the first row of its bounds.
func (s *SignalLabel) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Empty() || ctx.Buffer == nil {
		return
	}
	ctx.Buffer.Fill(runtime.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', s.style)
	text := truncateString(s.text, bounds.Width)
	x := alignedX(bounds, runewidth.StringWidth(text), s.alignment)
	ctx.Buffer.SetString(x, bounds.Y, text, s.style)
	s.ClearInvalidation()
}

// Mount subscribes to signal changes.
func (s *SignalLabel) Mount() {
	s.mounted = true
	s.Subs.Clear()
	if s.source == nil {
		s.text = ""
		return
	}
	s.text = s.source.Get()
	s.Observe(s.source, s.onSignal)
}

// Unmount unsubscribes from signal changes.
func (s *SignalLabel) Unmount() {
	s.mounted = false
	s.Subs.Clear()
}

func (s *SignalLabel) onSignal() {
	if !s.mounted || s.source == nil {
		return
	}
	s.text = s.source.Get()
	s.Invalidate()
}
