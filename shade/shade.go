// Package shade projects hit distances onto a screen column and picks glyphs
package shade

import "github.com/lixenwraith/ray-caster/parameter"

// Tier is a shading band, 0 is densest, TierVoid is blank
type Tier int

const (
	TierNear Tier = iota
	TierMid
	TierFar
	TierFaint
	TierVoid
)

// Span is the vertical wall extent on a column
// Rows <= Ceiling are ceiling, Ceiling < row <= Floor are wall, rows > Floor are floor
type Span struct {
	Ceiling int
	Floor   int
}

// Project converts a hit distance into ceiling and floor rows
// Distance must be non-zero; the caster guarantees at least one step
func Project(distance float64, screenHeight int) Span {
	h := float64(screenHeight)
	ceiling := int(h/2 - h/distance)
	return Span{
		Ceiling: ceiling,
		Floor:   screenHeight - ceiling,
	}
}

// WallTier buckets distance against depth: quarter, third, half, full
func WallTier(distance, depth float64) Tier {
	switch {
	case distance <= depth/4:
		return TierNear
	case distance < depth/3:
		return TierMid
	case distance < depth/2:
		return TierFar
	case distance < depth:
		return TierFaint
	default:
		return TierVoid
	}
}

// WallGlyph returns the wall glyph; tile seams are blanked
func WallGlyph(distance, depth float64, boundary bool) rune {
	if boundary {
		return parameter.GlyphVoid
	}
	return parameter.WallGlyphs[WallTier(distance, depth)]
}

// FloorTier buckets a floor row by b = 1 - (row - h/2) / (h/2)
func FloorTier(row, screenHeight int) Tier {
	half := float64(screenHeight) / 2
	b := 1 - (float64(row)-half)/half
	switch {
	case b < 0.25:
		return TierNear
	case b < 0.5:
		return TierMid
	case b < 0.75:
		return TierFar
	case b < 0.9:
		return TierFaint
	default:
		return TierVoid
	}
}

// FloorGlyph returns the floor glyph for a screen row
func FloorGlyph(row, screenHeight int) rune {
	return parameter.FloorGlyphs[FloorTier(row, screenHeight)]
}
