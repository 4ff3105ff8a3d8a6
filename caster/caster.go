// Package caster marches one ray per screen column through a grid map
package caster

import (
	"math"
	"sort"

	"github.com/lixenwraith/ray-caster/vmath"
)

// Map is the read-only view of the world consulted while marching
type Map interface {
	IsWall(row, col int) bool
	InBounds(row, col int) bool
}

// Params holds the per-run casting parameters
type Params struct {
	ScreenWidth   int
	FOV           float64
	Depth         float64
	StepSize      float64
	BoundaryAngle float64
}

// Hit is the result of marching a single ray
type Hit struct {
	Distance float64 // clamped to Depth, never zero
	Boundary bool    // ray is nearly collinear with a near corner of the hit cell
	Wall     bool    // a wall cell was struck (false when depth or bounds ran out)
	Row, Col int     // hit cell, valid only when Wall is true
}

// Caster casts rays against a Map
type Caster struct {
	m Map
	p Params
}

// New creates a caster; params are assumed validated by the caller
func New(m Map, p Params) *Caster {
	return &Caster{m: m, p: p}
}

// Params returns the casting parameters
func (c *Caster) Params() Params {
	return c.p
}

// RayAngle distributes ScreenWidth rays evenly across the FOV, left to right
func (c *Caster) RayAngle(heading float64, col int) float64 {
	return heading - c.p.FOV/2 + (float64(col)/float64(c.p.ScreenWidth))*c.p.FOV
}

// CastColumn casts the ray for a screen column
func (c *Caster) CastColumn(origin vmath.Vec2F, heading float64, col int) Hit {
	return c.Cast(origin, c.RayAngle(heading, col))
}

// Cast marches from origin along angle until a wall, the map edge, or Depth
func (c *Caster) Cast(origin vmath.Vec2F, angle float64) Hit {
	eye := vmath.V2FFromAngle(angle)

	// Sample positions are derived from the step index rather than accumulated to avoid drift
	for i := 1; ; i++ {
		dist := float64(i) * c.p.StepSize
		row, col := vmath.V2FAlong(origin, eye, dist).Floor()

		if !c.m.InBounds(row, col) {
			return Hit{Distance: c.p.Depth}
		}

		if c.m.IsWall(row, col) {
			return Hit{
				Distance: math.Min(dist, c.p.Depth),
				Boundary: IsBoundary(origin, eye, row, col, c.p.BoundaryAngle),
				Wall:     true,
				Row:      row,
				Col:      col,
			}
		}

		if dist >= c.p.Depth {
			return Hit{Distance: c.p.Depth}
		}
	}
}

type corner struct {
	dist  float64
	angle float64
}

// IsBoundary tests the three corners of cell (row, col) nearest to origin
// Returns true when the ray direction eye is within threshold radians of any of them
func IsBoundary(origin, eye vmath.Vec2F, row, col int, threshold float64) bool {
	corners := make([]corner, 0, 4)
	for tx := 0; tx < 2; tx++ {
		for ty := 0; ty < 2; ty++ {
			v := vmath.Vec2F{
				X: float64(row+tx) - origin.X,
				Y: float64(col+ty) - origin.Y,
			}
			corners = append(corners, corner{dist: vmath.V2FMag(v), angle: vmath.V2FAngleTo(eye, v)})
		}
	}

	sort.Slice(corners, func(i, j int) bool {
		return corners[i].dist < corners[j].dist
	})

	// The farthest corner is hidden behind the cell at any incidence
	for _, c := range corners[:3] {
		if c.angle < threshold {
			return true
		}
	}
	return false
}
