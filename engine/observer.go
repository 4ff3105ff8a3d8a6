package engine

import (
	"github.com/lixenwraith/ray-caster/vmath"
	"github.com/lixenwraith/ray-caster/world"
)

// Observer is the viewer's position and heading
// Heading is unbounded; trigonometry wraps it
type Observer struct {
	Pos     vmath.Vec2F
	Heading float64
}

// Direction returns the heading unit vector
func (o Observer) Direction() vmath.Vec2F {
	return vmath.V2FFromAngle(o.Heading)
}

// Cell returns the map cell the observer stands in
func (o Observer) Cell() (row, col int) {
	return o.Pos.Floor()
}

// Rotate adds delta radians to the heading
func (o *Observer) Rotate(delta float64) {
	o.Heading += delta
}

// Move steps dist along the heading (negative moves backward)
// Rejected moves leave the position untouched and return false
func (o *Observer) Move(walls world.Walls, dist float64) bool {
	next := vmath.V2FAlong(o.Pos, o.Direction(), dist)
	row, col := next.Floor()
	if walls.IsWall(row, col) {
		return false
	}
	o.Pos = next
	return true
}
