package graph

// quadrantGlyphs is indexed by left*3 + right, where each half is
// 0 (empty), 1 (lower quadrant only) or 2 (full height).
var quadrantGlyphs = [9]rune{' ', '▗', '▐', '▖', '▄', '▟', '▌', '▙', '█'}

// QuadrantGlyph returns the glyph for a palette index in [0, 8].
func QuadrantGlyph(index int) rune {
	return quadrantGlyphs[index]
}

// EmptyGlyph is written to cells with nothing to draw.
const EmptyGlyph = ' '

// DefaultLineGlyph is the Line stroke glyph when none is configured.
const DefaultLineGlyph = '.'
