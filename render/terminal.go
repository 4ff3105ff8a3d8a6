package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ray-caster/frame"
)

// TerminalDisplay presents frames on a tcell screen
type TerminalDisplay struct {
	screen tcell.Screen
	style  Styler
	width  int
	height int
}

// NewTerminalDisplay wraps an initialized screen; a nil styler draws plain glyphs
func NewTerminalDisplay(screen tcell.Screen, style Styler) *TerminalDisplay {
	if style == nil {
		style = PlainStyle
	}
	w, h := screen.Size()
	return &TerminalDisplay{
		screen: screen,
		style:  style,
		width:  w,
		height: h,
	}
}

// Present copies the frame to the screen, clipped to the screen size
func (d *TerminalDisplay) Present(f *frame.Frame) error {
	w, h := d.screen.Size()
	if w != d.width || h != d.height {
		// Resized: stale cells outside the frame must not linger
		d.width, d.height = w, h
		d.screen.Clear()
	}

	cols := min(f.Width(), w)
	rows := min(f.Height(), h)
	for y := 0; y < rows; y++ {
		line := f.Row(y)
		for x := 0; x < cols; x++ {
			r := line[x]
			d.screen.SetContent(x, y, r, nil, d.style(r))
		}
	}

	d.screen.Show()
	return nil
}
