package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-caster/parameter"
)

// Glyph colors, brightest for the nearest wall tier
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbWallNear   = tcell.NewRGBColor(235, 235, 235)
	RgbWallMid    = tcell.NewRGBColor(190, 190, 190)
	RgbWallFar    = tcell.NewRGBColor(140, 140, 140)
	RgbWallFaint  = tcell.NewRGBColor(95, 95, 95)
	RgbFloor      = tcell.NewRGBColor(70, 140, 70)
	RgbMapWall    = tcell.NewRGBColor(255, 255, 255)
	RgbObserver   = tcell.NewRGBColor(255, 220, 0)
	RgbText       = tcell.NewRGBColor(200, 200, 255)
)

// Styler maps a glyph to a terminal style
type Styler func(r rune) tcell.Style

// PlainStyle draws every glyph in the terminal default style
func PlainStyle(rune) tcell.Style {
	return tcell.StyleDefault
}

// StyleFor colors caster glyphs by tier
// Inset walls share the floor's '#' glyph and are colored as floor; the marker stands out
func StyleFor(r rune) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch r {
	case parameter.GlyphWallNear:
		return base.Foreground(RgbWallNear)
	case parameter.GlyphWallMid:
		return base.Foreground(RgbWallMid)
	case parameter.GlyphWallFar:
		return base.Foreground(RgbWallFar)
	case parameter.GlyphWallFaint:
		return base.Foreground(RgbWallFaint)
	case parameter.GlyphFloorNear, parameter.GlyphFloorMid, parameter.GlyphFloorFar, parameter.GlyphFloorFaint:
		return base.Foreground(RgbFloor)
	case parameter.GlyphObserver:
		return base.Foreground(RgbObserver).Bold(true)
	default:
		return base.Foreground(RgbText)
	}
}
