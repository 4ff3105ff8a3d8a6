package frame

import (
	"fmt"

	"github.com/lixenwraith/ray-caster/parameter"
	"github.com/lixenwraith/ray-caster/vmath"
)

// Inset is the map view drawn over the top-left corner
type Inset interface {
	Width() int
	Height() int
	Rune(row, col int) rune
}

// StatusLine formats position, heading and frame rate, bounded to StatusWidth runes
func StatusLine(pos vmath.Vec2F, heading, fps float64) string {
	s := fmt.Sprintf("X=%3.2f, Y=%3.2f, A=%3.2f FPS=%3.2f ", pos.X, pos.Y, heading, fps)
	if r := []rune(s); len(r) > parameter.StatusWidth {
		s = string(r[:parameter.StatusWidth])
	}
	return s
}

// DrawText writes text starting at column x of row y, clipped to the frame
// Returns the column after the last written rune
func (f *Frame) DrawText(x, y int, text string) int {
	for _, r := range text {
		f.Set(x, y, r)
		x++
	}
	return x
}

// DrawInset copies the map one cell per frame cell, shifted down by rowOffset
func (f *Frame) DrawInset(m Inset, rowOffset int) {
	for row := 0; row < m.Height(); row++ {
		for col := 0; col < m.Width(); col++ {
			f.Set(col, row+rowOffset, m.Rune(row, col))
		}
	}
}

// DrawMarker marks the observer's cell on the inset
// World X is the map row, world Y the map column
func (f *Frame) DrawMarker(pos vmath.Vec2F, rowOffset int, glyph rune) {
	row, col := pos.Floor()
	f.Set(col, row+rowOffset, glyph)
}

// Overlay is the per-frame overlay content
type Overlay struct {
	Map     Inset
	Pos     vmath.Vec2F
	Heading float64
	FPS     float64
	Extra   string // appended after the status line when it fits
}

// Compose draws status line, map inset and observer marker over the rendered columns
func (f *Frame) Compose(o Overlay) {
	end := f.DrawText(0, 0, StatusLine(o.Pos, o.Heading, o.FPS))
	if o.Extra != "" && end+len([]rune(o.Extra)) <= f.width {
		f.DrawText(end, 0, o.Extra)
	}
	if o.Map != nil {
		f.DrawInset(o.Map, parameter.InsetRowOffset)
	}
	f.DrawMarker(o.Pos, parameter.InsetRowOffset, parameter.GlyphObserver)
}
