package graph

// Quadrant draws an area chart at twice the cell resolution on both axes.
//
// Each column takes two samples, one for its left half and one for its
// right half. Samples are heights in pixel rows, where a cell is two
// pixel rows tall.
type Quadrant struct {
	sample SampleFunc
}

// NewQuadrant creates a quadrant renderer over fn.
func NewQuadrant(fn SampleFunc) *Quadrant {
	return &Quadrant{sample: fn}
}

// SizeRequest asks for at least 3x3 cells, flexible on both axes.
func (q *Quadrant) SizeRequest() SizeRequest {
	return flexibleRequest
}

// Paint samples at pixel resolution and fills region.
func (q *Quadrant) Paint(region Region, dst CellWriter) error {
	if region.Empty() {
		return nil
	}
	if q.sample == nil {
		return ErrNoSampler
	}
	cols := region.Columns()
	width, height := cols*2, region.Rows()*2
	data := q.sample(width, height)
	if len(data) != 2*cols {
		return &SampleCountError{
			Renderer: "quadrant",
			Width:    width,
			Height:   height,
			Want:     2 * cols,
			Got:      len(data),
		}
	}

	base := 2 * region.RowMax
	i := 0
	for x := region.ColMin; x <= region.ColMax; x++ {
		left := base - data[i]
		right := base - data[i+1]
		i += 2
		for y := region.RowMin; y <= region.RowMax; y++ {
			dst.SetCell(x, y, quadrantGlyphs[quadrantIndex(2*y, left, right)])
		}
	}
	return nil
}

// quadrantIndex classifies the cell whose upper pixel row is yy against
// the fill boundaries of its two halves. A half above its boundary is
// empty, one whose upper pixel is the boundary is filled in the lower
// quadrant only, and one below is full.
func quadrantIndex(yy, left, right int) int {
	return 3*halfState(yy, left) + halfState(yy, right)
}

func halfState(yy, boundary int) int {
	switch {
	case yy < boundary:
		return 0
	case yy == boundary:
		return 1
	default:
		return 2
	}
}
