package parameter

// Wall shade tiers, densest first
const (
	GlyphWallNear  = '█' // <= Depth/4
	GlyphWallMid   = '▓' // < Depth/3
	GlyphWallFar   = '▒' // < Depth/2
	GlyphWallFaint = '░' // < Depth
	GlyphVoid      = ' ' // beyond depth, ceiling, tile seams
)

// Floor shade tiers, densest (closest) first
const (
	GlyphFloorNear  = '#'
	GlyphFloorMid   = 'x'
	GlyphFloorFar   = '.'
	GlyphFloorFaint = '-'
)

// Overlay glyphs
const (
	GlyphObserver = 'P'
)

// WallGlyphs lists wall tiers in distance order, void last
var WallGlyphs = [5]rune{GlyphWallNear, GlyphWallMid, GlyphWallFar, GlyphWallFaint, GlyphVoid}

// FloorGlyphs lists floor tiers in distance order, void last
var FloorGlyphs = [5]rune{GlyphFloorNear, GlyphFloorMid, GlyphFloorFar, GlyphFloorFaint, GlyphVoid}
