package engine

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ray-caster/caster"
	"github.com/lixenwraith/ray-caster/frame"
	"github.com/lixenwraith/ray-caster/shade"
)

// Renderer casts, shades and composes frames
// Columns are split into contiguous ranges, one goroutine per range
type Renderer struct {
	caster  *caster.Caster
	cfg     RenderConfig
	floor   []rune
	workers int
	columns []shade.Column
}

// NewRenderer creates a renderer for a validated config
func NewRenderer(m caster.Map, cfg RenderConfig) *Renderer {
	return &Renderer{
		caster:  caster.New(m, cfg.CasterParams()),
		cfg:     cfg,
		floor:   shade.FloorTable(cfg.ScreenHeight),
		workers: cfg.WorkerCount(),
		columns: make([]shade.Column, cfg.ScreenWidth),
	}
}

// Columns returns the per-column results of the last rendered frame
// Valid until the next Render call
func (r *Renderer) Columns() []shade.Column {
	return r.columns
}

// Render draws the state's observer view into st.Frame and overlays status and map
// Returns the time spent casting and shading columns
func (r *Renderer) Render(st *RenderState, fps float64) time.Duration {
	start := time.Now()
	obs := st.Observer // snapshot, never mutated while casting
	f := st.Frame

	width := r.cfg.ScreenWidth
	chunk := (width + r.workers - 1) / r.workers

	var g errgroup.Group
	g.SetLimit(r.workers)
	for lo := 0; lo < width; lo += chunk {
		hi := min(lo+chunk, width)
		g.Go(func() error {
			r.renderColumns(f, obs, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
	cast := time.Since(start)

	overlay := frame.Overlay{
		Map:     st.Map,
		Pos:     obs.Pos,
		Heading: obs.Heading,
		FPS:     fps,
	}
	if r.cfg.ShowStats {
		overlay.Extra = st.Stats.Summary()
	}
	f.Compose(overlay)

	return cast
}

// renderColumns writes columns [lo, hi) of every row
func (r *Renderer) renderColumns(f *frame.Frame, obs Observer, lo, hi int) {
	height := r.cfg.ScreenHeight
	for col := lo; col < hi; col++ {
		hit := r.caster.CastColumn(obs.Pos, obs.Heading, col)
		column := shade.Resolve(hit.Distance, hit.Boundary, r.cfg.Depth, height)
		r.columns[col] = column

		for row := 0; row < height; row++ {
			f.Set(col, row, column.GlyphAt(row, r.floor))
		}
	}
}
