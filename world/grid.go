package world

import (
	"errors"
	"fmt"
)

// CellKind classifies a map cell
type CellKind uint8

const (
	Empty CellKind = iota
	Wall
)

// Map glyphs used by text map rows and the inset overlay
const (
	WallRune  = '#'
	EmptyRune = '.'
)

var (
	ErrEmptyMap     = errors.New("map has no rows")
	ErrRaggedMap    = errors.New("map rows differ in length")
	ErrUnknownCell  = errors.New("unknown map cell")
	ErrOpenBoundary = errors.New("outer ring is not fully wall")
)

// Walls is the collision predicate consumed by the caster and movement
type Walls interface {
	IsWall(x, y int) bool
}

// Grid is a read-only rectangular map of wall/empty cells in row-major order
// Addressed as (row, col) everywhere: row = int(X), col = int(Y)
type Grid struct {
	width  int
	height int
	cells  []CellKind
}

// NewGrid creates an all-empty grid; width/height below 1 are raised to 1
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
	}
}

// ParseGrid builds a grid from text rows of '#' (wall) and '.' (empty)
// Rows are top to bottom; the outer ring must be wall
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, ErrEmptyMap
	}

	g := NewGrid(width, len(rows))
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(runes), width, ErrRaggedMap)
		}
		for col, r := range runes {
			switch r {
			case WallRune:
				g.cells[g.index(row, col)] = Wall
			case EmptyRune:
				g.cells[g.index(row, col)] = Empty
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", row, col, r, ErrUnknownCell)
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// InBounds reports whether (row, col) addresses a cell
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the cell kind; ok is false outside the grid
func (g *Grid) At(row, col int) (CellKind, bool) {
	if !g.InBounds(row, col) {
		return Wall, false
	}
	return g.cells[g.index(row, col)], true
}

// Set writes a cell kind, returns false outside the grid
func (g *Grid) Set(row, col int, kind CellKind) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[g.index(row, col)] = kind
	return true
}

// IsWall fails closed: anything outside the grid is wall
func (g *Grid) IsWall(row, col int) bool {
	kind, _ := g.At(row, col)
	return kind == Wall
}

// Rune returns the map glyph for a cell, WallRune outside the grid
func (g *Grid) Rune(row, col int) rune {
	if g.IsWall(row, col) {
		return WallRune
	}
	return EmptyRune
}

// Rows renders the grid back to text rows
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	line := make([]rune, g.width)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			line[col] = g.Rune(row, col)
		}
		rows[row] = string(line)
	}
	return rows
}

// Validate checks that the outer ring is fully wall
func (g *Grid) Validate() error {
	for col := 0; col < g.width; col++ {
		if !g.IsWall(0, col) || !g.IsWall(g.height-1, col) {
			return fmt.Errorf("column %d: %w", col, ErrOpenBoundary)
		}
	}
	for row := 0; row < g.height; row++ {
		if !g.IsWall(row, 0) || !g.IsWall(row, g.width-1) {
			return fmt.Errorf("row %d: %w", row, ErrOpenBoundary)
		}
	}
	return nil
}
