package runtime

import "github.com/odvcencio/furry-graph/backend"

// Screen owns the root widget and the buffer it renders into.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	services      Services
}

// NewScreen creates a screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
	}
}

// SetServices configures app services handed to bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Bounds returns the full screen rect.
func (s *Screen) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Resize changes the screen dimensions and lays the root out again.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	s.layoutRoot()
}

// Buffer returns the render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// SetRoot replaces the root widget. The old tree is unmounted and unbound,
// the new one bound, laid out over the full screen, and mounted.
func (s *Screen) SetRoot(root Widget) {
	if old := s.root; old != nil {
		UnmountTree(old)
		UnbindTree(old)
	}
	s.root = root
	if root == nil {
		return
	}
	BindTree(root, s.services)
	s.layoutRoot()
	MountTree(root)
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

func (s *Screen) layoutRoot() {
	if s.root == nil {
		return
	}
	bounds := s.Bounds()
	size := s.root.Measure(Tight(Size{Width: bounds.Width, Height: bounds.Height}))
	bounds.Width = min(bounds.Width, size.Width)
	bounds.Height = min(bounds.Height, size.Height)
	s.root.Layout(bounds)
}

// Render paints the widget tree into the buffer.
func (s *Screen) Render() {
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{Buffer: s.buffer, Bounds: s.Bounds()})
}

// HandleMessage delivers msg to the root widget.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s.root == nil {
		return Unhandled()
	}
	return s.root.HandleMessage(msg)
}

// RenderContext is passed to widgets during Render.
type RenderContext struct {
	Buffer *Buffer
	Bounds Rect
}

// Sub returns a context for a child region.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	return RenderContext{Buffer: ctx.Buffer, Bounds: bounds}
}

// Clear blanks the context bounds with style.
func (ctx RenderContext) Clear(style backend.Style) {
	if ctx.Buffer == nil {
		return
	}
	ctx.Buffer.Fill(ctx.Bounds, ' ', style)
}

// Flush writes the buffer's dirty cells to be and clears the dirty state.
// It returns the number of cells written.
func Flush(be backend.Backend, buf *Buffer) int {
	if be == nil || buf == nil || !buf.IsDirty() {
		return 0
	}
	w, h := buf.Size()
	cells := buf.Cells()
	flushed := 0
	if buf.DirtyCount() == w*h {
		if rw, ok := be.(backend.RectWriter); ok {
			rw.SetRect(0, 0, w, h, cells)
			buf.ClearDirty()
			return w * h
		}
	}
	rowWriter, hasRowWriter := be.(backend.RowWriter)
	buf.ForEachDirtySpan(func(y, startX, endX int) {
		row := cells[y*w+startX : y*w+endX]
		if hasRowWriter {
			rowWriter.SetRow(y, startX, row)
		} else {
			for i, cell := range row {
				be.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
			}
		}
		flushed += endX - startX
	})
	buf.ClearDirty()
	return flushed
}
