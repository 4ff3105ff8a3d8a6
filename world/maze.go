package world

import (
	"math/rand"
	"time"
)

// MaxMazeSide bounds generated mazes to the small fixed grid the caster targets
const MaxMazeSide = 16

// MazeConfig controls random maze generation
type MazeConfig struct {
	Rows, Cols int

	// Braiding: 0 keeps a perfect maze (tree); 1 removes every dead end it safely can
	Braiding float64

	Seed int64 // 0 = time-based
}

type cell struct {
	row, col int
}

// GenerateMaze carves a closed-ring maze with a recursive backtracker
// Sides are clamped to [5, MaxMazeSide] and rounded down to odd; (1, 1) is always open
func GenerateMaze(cfg MazeConfig) *Grid {
	rows := oddSide(cfg.Rows)
	cols := oddSide(cfg.Cols)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := NewGrid(cols, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, Wall)
		}
	}

	carve(g, cell{1, 1}, rng)
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}
	return g
}

var jumps = []cell{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// carve opens rooms on odd cells and the walls between them, leaving the outer ring intact
func carve(g *Grid, start cell, rng *rand.Rand) {
	rows, cols := g.Height(), g.Width()
	stack := []cell{start}
	g.Set(start.row, start.col, Empty)

	candidates := make([]cell, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range jumps {
			nr, nc := cur.row+d.row, cur.col+d.col
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && g.IsWall(nr, nc) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		g.Set(cur.row+d.row/2, cur.col+d.col/2, Empty)
		next := cell{cur.row + d.row, cur.col + d.col}
		g.Set(next.row, next.col, Empty)
		stack = append(stack, next)
	}
}

// braid opens a wall beside dead ends with the given probability, never creating 2x2 open areas
func braid(g *Grid, probability float64, rng *rand.Rand) {
	rows, cols := g.Height(), g.Width()

	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			if g.IsWall(r, c) || openNeighbors(g, r, c) != 1 || rng.Float64() >= probability {
				continue
			}

			var walls []cell
			for _, d := range jumps {
				nr, nc := r+d.row, c+d.col
				wr, wc := r+d.row/2, c+d.col/2
				if nr <= 0 || nr >= rows-1 || nc <= 0 || nc >= cols-1 {
					continue
				}
				if !g.IsWall(nr, nc) && g.IsWall(wr, wc) && !opensPlaza(g, wr, wc) {
					walls = append(walls, cell{wr, wc})
				}
			}
			if len(walls) > 0 {
				w := walls[rng.Intn(len(walls))]
				g.Set(w.row, w.col, Empty)
			}
		}
	}
}

func openNeighbors(g *Grid, r, c int) int {
	n := 0
	for _, d := range []cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if !g.IsWall(r+d.row, c+d.col) {
			n++
		}
	}
	return n
}

// opensPlaza reports whether opening (r, c) completes a 2x2 open square
func opensPlaza(g *Grid, r, c int) bool {
	open := func(rr, cc int) bool { return !g.IsWall(rr, cc) }
	for _, q := range []cell{{-1, -1}, {-1, 0}, {0, -1}, {0, 0}} {
		r0, c0 := r+q.row, c+q.col
		n := 0
		for _, p := range []cell{{r0, c0}, {r0, c0 + 1}, {r0 + 1, c0}, {r0 + 1, c0 + 1}} {
			if p.row == r && p.col == c || open(p.row, p.col) {
				n++
			}
		}
		if n == 4 {
			return true
		}
	}
	return false
}

func oddSide(n int) int {
	n = max(5, min(n, MaxMazeSide))
	if n%2 == 0 {
		n--
	}
	return n
}
