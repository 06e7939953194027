package backend

// RectWriter is implemented by backends that accept a block of cells in one call.
// Cells are row-major with width*height entries.
type RectWriter interface {
	SetRect(x, y, width, height int, cells []Cell)
}
