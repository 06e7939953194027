package backend

// RowWriter is implemented by backends that accept a run of cells in one call.
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}
