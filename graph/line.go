package graph

import "github.com/mattn/go-runewidth"

// Line draws one bar per column, measured up from the bottom row.
//
// Only the top StrokeWidth cells of each bar are drawn unless fill is
// set, in which case the whole bar is drawn.
type Line struct {
	sample SampleFunc
	stroke uint
	fill   bool
	glyph  rune
}

// LineOption configures a Line.
type LineOption func(*Line)

// WithFill draws the full bar height instead of only the stroke.
func WithFill(fill bool) LineOption {
	return func(l *Line) {
		l.fill = fill
	}
}

// WithGlyph sets the glyph used for drawn cells. It must occupy exactly
// one terminal column; anything else is ignored with a warning.
func WithGlyph(glyph rune) LineOption {
	return func(l *Line) {
		if runewidth.RuneWidth(glyph) != 1 {
			Logger().Warn("line graph glyph must be one column wide",
				"glyph", string(glyph), "fallback", string(DefaultLineGlyph))
			return
		}
		l.glyph = glyph
	}
}

// NewLine creates a line renderer over fn with the given stroke width.
func NewLine(fn SampleFunc, strokeWidth uint, opts ...LineOption) *Line {
	l := &Line{
		sample: fn,
		stroke: strokeWidth,
		glyph:  DefaultLineGlyph,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// StrokeWidth returns the number of cells drawn from the top of each bar.
func (l *Line) StrokeWidth() uint { return l.stroke }

// Filled reports whether bars are drawn solid.
func (l *Line) Filled() bool { return l.fill }

// Glyph returns the glyph used for drawn cells.
func (l *Line) Glyph() rune { return l.glyph }

// SizeRequest asks for at least 3x3 cells, flexible on both axes.
func (l *Line) SizeRequest() SizeRequest {
	return flexibleRequest
}

// Paint samples one value per column and fills region.
func (l *Line) Paint(region Region, dst CellWriter) error {
	if region.Empty() {
		return nil
	}
	if l.sample == nil {
		return ErrNoSampler
	}
	width, height := region.Columns(), region.Rows()
	data := l.sample(width, height)
	if len(data) != width {
		return &SampleCountError{
			Renderer: "line",
			Width:    width,
			Height:   height,
			Want:     width,
			Got:      len(data),
		}
	}

	for i, x := 0, region.ColMin; x <= region.ColMax; i, x = i+1, x+1 {
		value := data[i]
		// Rows strictly below top belong to the bar, so it is value rows tall.
		top := region.RowMax - value
		var drawn uint
		for y := region.RowMin; y <= region.RowMax; y++ {
			glyph := rune(EmptyGlyph)
			if value != 0 && y > top {
				drawn++
				if drawn <= l.stroke || l.fill {
					glyph = l.glyph
				}
			}
			dst.SetCell(x, y, glyph)
		}
	}
	return nil
}
