// Package widgets provides the widgets a graph dashboard is built from.
package widgets

import (
	"github.com/mattn/go-runewidth"
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-graph/runtime"
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	id          ulid.ULID
	bounds      runtime.Rect
	needsRender bool
}

// ID returns a stable identifier for the widget, assigned on first use.
func (b *Base) ID() ulid.ULID {
	if b == nil {
		return ulid.ULID{}
	}
	if b.id == (ulid.ULID{}) {
		b.id = ulid.Make()
	}
	return b.id
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b == nil {
		return
	}
	if b.bounds != bounds {
		b.bounds = bounds
		b.needsRender = true
	}
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	if b == nil {
		return runtime.Rect{}
	}
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// Invalidate marks the widget as needing a render pass.
func (b *Base) Invalidate() {
	if b == nil {
		return
	}
	b.needsRender = true
}

// NeedsRender reports whether the widget needs to re-render.
func (b *Base) NeedsRender() bool {
	if b == nil {
		return false
	}
	return b.needsRender
}

// ClearInvalidation clears the render-needed flag.
func (b *Base) ClearInvalidation() {
	if b == nil {
		return
	}
	b.needsRender = false
}

// Alignment positions text within a line.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// truncateString truncates a string to fit within maxWidth columns.
// Adds "…" if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// alignedX returns the column where text of width w starts inside bounds.
func alignedX(bounds runtime.Rect, w int, align Alignment) int {
	switch align {
	case AlignCenter:
		return bounds.X + max(0, (bounds.Width-w)/2)
	case AlignRight:
		return bounds.X + max(0, bounds.Width-w)
	default:
		return bounds.X
	}
}
