// Package graph rasterizes sampled signals into terminal cells.
//
// Two renderers are provided. Quadrant packs two samples per column into
// block-element glyphs for an area chart at twice the cell resolution.
// Line draws one bar per column with a configurable stroke.
//
// Both follow the same protocol: the host asks for a SizeRequest, assigns
// a Region, and calls Paint. Paint invokes the sampling function exactly
// once and writes every cell of the region exactly once. Renderers hold
// no state between paints and are safe to share.
package graph

// SampleFunc returns the samples to draw for a paint of the given
// resolution. Quadrant passes pixel dimensions (twice the cell counts) and
// expects 2*columns samples; Line passes cell dimensions and expects one
// sample per column.
//
// It must be a pure function of its arguments. Sample values are heights
// measured up from the bottom of the region; negative values are the
// caller's responsibility.
type SampleFunc func(width, height int) []int

// Region is an inclusive rectangle of cells.
type Region struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// RegionOf returns the region covering width by height cells at (x, y).
func RegionOf(x, y, width, height int) Region {
	return Region{
		RowMin: y,
		RowMax: y + height - 1,
		ColMin: x,
		ColMax: x + width - 1,
	}
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool {
	return r.RowMax < r.RowMin || r.ColMax < r.ColMin
}

// Columns returns the number of columns.
func (r Region) Columns() int {
	return max(0, r.ColMax-r.ColMin+1)
}

// Rows returns the number of rows.
func (r Region) Rows() int {
	return max(0, r.RowMax-r.RowMin+1)
}

// SizeRequest is what a renderer asks of the layout before a region is
// assigned.
type SizeRequest struct {
	MinWidth  int
	MinHeight int
	GrowX     bool
	GrowY     bool
	ShrinkX   bool
	ShrinkY   bool
}

// flexibleRequest is the request both renderers make: at least 3x3 cells
// and willing to grow or shrink on both axes.
var flexibleRequest = SizeRequest{
	MinWidth:  3,
	MinHeight: 3,
	GrowX:     true,
	GrowY:     true,
	ShrinkX:   true,
	ShrinkY:   true,
}

// CellWriter is the paint target.
type CellWriter interface {
	SetCell(col, row int, glyph rune)
}

// CellWriterFunc adapts a function to CellWriter.
type CellWriterFunc func(col, row int, glyph rune)

// SetCell calls f.
func (f CellWriterFunc) SetCell(col, row int, glyph rune) {
	f(col, row, glyph)
}

// Renderer is a paintable region.
type Renderer interface {
	SizeRequest() SizeRequest
	Paint(region Region, dst CellWriter) error
}

var (
	_ Renderer = (*Quadrant)(nil)
	_ Renderer = (*Line)(nil)
)
