// Package frame holds the character grid handed to display collaborators
package frame

import "strings"

// Blank is the rune every cell starts as
const Blank = ' '

// Frame is a row-major character grid, fully overwritten each frame
// Disjoint cells may be written concurrently; nothing else is shared
type Frame struct {
	width  int
	height int
	cells  []rune
}

// New creates a blank frame with the given dimensions
func New(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f := &Frame{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	f.Clear()
	return f
}

// Width returns the number of columns
func (f *Frame) Width() int {
	return f.width
}

// Height returns the number of rows
func (f *Frame) Height() int {
	return f.height
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Get returns the rune at column x, row y
func (f *Frame) Get(x, y int) (rune, bool) {
	if !f.inBounds(x, y) {
		return 0, false
	}
	return f.cells[y*f.width+x], true
}

// Set writes the rune at column x, row y, returns false when clipped
func (f *Frame) Set(x, y int, r rune) bool {
	if !f.inBounds(x, y) {
		return false
	}
	f.cells[y*f.width+x] = r
	return true
}

// Clear resets every cell to Blank
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = Blank
	// Exponential copy
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Row returns a copy of row y, nil outside the frame
func (f *Frame) Row(y int) []rune {
	if y < 0 || y >= f.height {
		return nil
	}
	row := make([]rune, f.width)
	copy(row, f.cells[y*f.width:(y+1)*f.width])
	return row
}

// Column returns a copy of column x, nil outside the frame
func (f *Frame) Column(x int) []rune {
	if x < 0 || x >= f.width {
		return nil
	}
	col := make([]rune, f.height)
	for y := range col {
		col[y] = f.cells[y*f.width+x]
	}
	return col
}

// Lines returns all rows as strings
func (f *Frame) Lines() []string {
	lines := make([]string, f.height)
	for y := range lines {
		lines[y] = string(f.cells[y*f.width : (y+1)*f.width])
	}
	return lines
}

// String joins rows with newlines
func (f *Frame) String() string {
	return strings.Join(f.Lines(), "\n")
}
