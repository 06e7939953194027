package widgets

import (
	"github.com/odvcencio/furry-graph/backend"
	"github.com/odvcencio/furry-graph/runtime"
)

// GridChild positions a widget in the grid.
type GridChild struct {
	Widget  runtime.Widget
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Grid lays children out on a fixed number of columns. Rows are added as
// children are appended. Column widths and row heights are split evenly,
// with leftover cells going to the leading tracks.
type Grid struct {
	Base
	Cols     int
	Gap      int
	Children []GridChild
}

// NewGrid creates a grid with cols columns.
func NewGrid(cols int) *Grid {
	return &Grid{Cols: max(1, cols)}
}

// Add places child at (row, col) spanning the given tracks.
func (g *Grid) Add(child runtime.Widget, row, col, rowSpan, colSpan int) {
	if g == nil || child == nil {
		return
	}
	g.Children = append(g.Children, GridChild{
		Widget:  child,
		Row:     max(0, row),
		Col:     min(max(0, col), g.cols()-1),
		RowSpan: max(1, rowSpan),
		ColSpan: max(1, colSpan),
	})
}

// Append places child in the next free cell, row by row.
func (g *Grid) Append(child runtime.Widget) {
	n := len(g.Children)
	g.Add(child, n/g.cols(), n%g.cols(), 1, 1)
}

func (g *Grid) cols() int {
	return max(1, g.Cols)
}

// Rows returns the number of rows the children occupy.
func (g *Grid) Rows() int {
	rows := 0
	for _, child := range g.Children {
		rows = max(rows, child.Row+child.RowSpan)
	}
	return rows
}

// Measure sizes every track to the largest child minimum.
func (g *Grid) Measure(constraints runtime.Constraints) runtime.Size {
	rows, cols := g.Rows(), g.cols()
	cellW, cellH := 0, 0
	for _, child := range g.Children {
		size := child.Widget.Measure(runtime.Loose(constraints.MaxSize()))
		cellW = max(cellW, ceilDiv(size.Width, child.ColSpan))
		cellH = max(cellH, ceilDiv(size.Height, child.RowSpan))
	}
	return constraints.Constrain(runtime.Size{
		Width:  cellW*cols + g.Gap*max(0, cols-1),
		Height: cellH*rows + g.Gap*max(0, rows-1),
	})
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Flex lets the grid take whatever space its parent offers.
func (g *Grid) Flex() runtime.Flex {
	return runtime.Flex{GrowX: 1, GrowY: 1, ShrinkX: 1, ShrinkY: 1}
}

// tracks splits length into n tracks separated by gap and returns each
// track's start offset and size.
func tracks(length, n, gap int) (starts, sizes []int) {
	avail := max(0, length-gap*max(0, n-1))
	starts = make([]int, n)
	sizes = make([]int, n)
	pos := 0
	for i := range n {
		sizes[i] = avail / n
		if i < avail%n {
			sizes[i]++
		}
		starts[i] = pos
		pos += sizes[i] + gap
	}
	return starts, sizes
}

func span(starts, sizes []int, first, count int) (int, int) {
	last := min(first+count, len(starts)) - 1
	if first > last {
		return 0, 0
	}
	return starts[first], starts[last] + sizes[last] - starts[first]
}

// Layout positions children on the tracks.
func (g *Grid) Layout(bounds runtime.Rect) {
	g.Base.Layout(bounds)
	rows := g.Rows()
	if rows == 0 {
		return
	}
	colStarts, colSizes := tracks(bounds.Width, g.cols(), g.Gap)
	rowStarts, rowSizes := tracks(bounds.Height, rows, g.Gap)
	for _, child := range g.Children {
		x, w := span(colStarts, colSizes, child.Col, child.ColSpan)
		y, h := span(rowStarts, rowSizes, child.Row, child.RowSpan)
		child.Widget.Layout(runtime.Rect{X: bounds.X + x, Y: bounds.Y + y, Width: w, Height: h})
	}
}

// Render draws all children. Gaps and empty cells are blanked after the
// grid is laid out again.
func (g *Grid) Render(ctx runtime.RenderContext) {
	if ctx.Buffer == nil {
		return
	}
	if g.NeedsRender() {
		ctx.Buffer.Fill(g.bounds, ' ', backend.DefaultStyle())
	}
	for _, child := range g.Children {
		child.Widget.Render(ctx)
	}
	g.ClearInvalidation()
}

// HandleMessage forwards messages to children.
func (g *Grid) HandleMessage(msg runtime.Message) runtime.HandleResult {
	for _, child := range g.Children {
		if result := child.Widget.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}

// ChildWidgets returns grid children.
func (g *Grid) ChildWidgets() []runtime.Widget {
	if g == nil {
		return nil
	}
	out := make([]runtime.Widget, 0, len(g.Children))
	for _, child := range g.Children {
		out = append(out, child.Widget)
	}
	return out
}
