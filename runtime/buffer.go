package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-graph/backend"
)

// Cell is a single character cell in the buffer.
type Cell = backend.Cell

// Buffer is the back buffer widgets render into.
// The app flushes only the cells that changed since the last ClearDirty.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyAll   bool
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a buffer of w by h blank cells.
func NewBuffer(w, h int) *Buffer {
	w, h = max(0, w), max(0, h)
	b := &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
	b.blank(b.cells)
	return b
}

func (b *Buffer) blank(cells []Cell) {
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Bounds returns the buffer as a rect at the origin.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Resize changes the dimensions, keeping the overlapping content,
// and marks everything dirty.
func (b *Buffer) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w == b.width && h == b.height {
		return
	}
	cells := make([]Cell, w*h)
	b.blank(cells)
	for y := 0; y < min(h, b.height); y++ {
		n := min(w, b.width)
		copy(cells[y*w:y*w+n], b.cells[y*b.width:y*b.width+n])
	}
	b.cells = cells
	b.dirty = make([]bool, w*h)
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Clear blanks the whole buffer.
func (b *Buffer) Clear() {
	b.Fill(b.Bounds(), ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell when out of range.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inside(x, y) {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes r at (x, y). Out-of-range writes are dropped.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if !b.inside(x, y) {
		return
	}
	b.put(x, y, Cell{Rune: r, Style: s})
}

// SetString writes s starting at (x, y) and returns the number of columns
// it advanced. Wide runes take two columns; the second holds a zero rune.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= b.width {
			break
		}
		b.Set(col, y, r, style)
		if w == 2 {
			b.Set(col+1, y, 0, style)
		}
		col += w
	}
	return col - x
}

// Fill sets every cell of r to ch.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	r = r.Intersection(b.Bounds())
	cell := Cell{Rune: ch, Style: s}
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.put(x, y, cell)
		}
	}
}

// DrawBox draws a single-line border along the edge of r.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	b.DrawBoxGap(r, 0, 0, s)
}

// DrawBoxGap draws the border of r but leaves the top edge columns in
// [from, to) untouched, so a caption written there is not overdrawn.
func (b *Buffer) DrawBoxGap(r Rect, from, to int, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1
	for x := r.X + 1; x < right; x++ {
		if x < from || x >= to {
			b.Set(x, r.Y, '─', s)
		}
		b.Set(x, bottom, '─', s)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(right, y, '│', s)
	}
	b.Set(r.X, r.Y, '┌', s)
	b.Set(right, r.Y, '┐', s)
	b.Set(r.X, bottom, '└', s)
	b.Set(right, bottom, '┘', s)
}

// Cells returns the row-major cell slice.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) put(x, y int, cell Cell) {
	idx := y*b.width + x
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	b.markDirty(x, y, idx)
}

func (b *Buffer) markDirty(x, y, idx int) {
	if b.dirtyAll || b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	b.dirtyCount++
	if b.dirtyCount == 1 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	x0 := min(b.dirtyRect.X, x)
	y0 := min(b.dirtyRect.Y, y)
	x1 := max(b.dirtyRect.X+b.dirtyRect.Width, x+1)
	y1 := max(b.dirtyRect.Y+b.dirtyRect.Height, y+1)
	b.dirtyRect = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkAllDirty forces the next flush to repaint every cell.
func (b *Buffer) MarkAllDirty() {
	b.dirtyAll = true
	b.dirtyCount = b.width * b.height
	b.dirtyRect = b.Bounds()
}

// ClearDirty forgets all pending changes.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyAll = false
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty reports whether any cell changed.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// DirtyRect returns the bounding box of changed cells.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// IsCellDirty reports whether the cell at (x, y) changed.
func (b *Buffer) IsCellDirty(x, y int) bool {
	if !b.inside(x, y) {
		return false
	}
	return b.dirtyAll || b.dirty[y*b.width+x]
}

// ForEachDirtySpan calls fn for each run of changed cells in a row.
// endX is exclusive.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	if b.dirtyCount == 0 {
		return
	}
	r := b.dirtyRect
	for y := r.Y; y < r.Y+r.Height; y++ {
		x := r.X
		for x < r.X+r.Width {
			if !b.IsCellDirty(x, y) {
				x++
				continue
			}
			start := x
			for x < r.X+r.Width && b.IsCellDirty(x, y) {
				x++
			}
			fn(y, start, x)
		}
	}
}
