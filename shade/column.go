package shade

import "github.com/lixenwraith/ray-caster/parameter"

// Column is the per-frame result for one screen column
type Column struct {
	Distance float64
	Boundary bool
	Span
	Wall rune
}

// Resolve projects and shades a single hit
func Resolve(distance float64, boundary bool, depth float64, screenHeight int) Column {
	return Column{
		Distance: distance,
		Boundary: boundary,
		Span:     Project(distance, screenHeight),
		Wall:     WallGlyph(distance, depth, boundary),
	}
}

// GlyphAt returns the glyph for a row given a precomputed floor table
func (c Column) GlyphAt(row int, floor []rune) rune {
	switch {
	case row <= c.Ceiling:
		return parameter.GlyphVoid
	case row <= c.Floor:
		return c.Wall
	default:
		return floor[row]
	}
}

// FloorTable precomputes floor glyphs per row, indexed by screen row
func FloorTable(screenHeight int) []rune {
	table := make([]rune, screenHeight)
	for row := range table {
		table[row] = FloorGlyph(row, screenHeight)
	}
	return table
}
