package vmath

import "math"

// Vec2F is a float64 2D vector in world space
// X runs down the map rows, Y runs across the map columns
type Vec2F struct {
	X, Y float64
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	return Vec2F{v.X / mag, v.Y / mag}
}

// V2FFromAngle returns the heading unit vector (sin a, cos a)
// Heading 0 points along +Y (east), increasing angle turns toward +X (south)
func V2FFromAngle(a float64) Vec2F {
	return Vec2F{math.Sin(a), math.Cos(a)}
}

// V2FAlong returns the point dist units from origin along unit direction dir
func V2FAlong(origin, dir Vec2F, dist float64) Vec2F {
	return Vec2F{origin.X + dir.X*dist, origin.Y + dir.Y*dist}
}

// V2FAngleTo returns the angle in radians between unit direction dir and v
// A zero-length v lies on the ray and yields 0
func V2FAngleTo(dir, v Vec2F) float64 {
	mag := V2FMag(v)
	if mag == 0 {
		return 0
	}
	return math.Acos(ClampUnit(V2FDot(dir, v) / mag))
}

// Floor truncates both components to integer cell coordinates
func (v Vec2F) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// ClampUnit clamps a cosine into [-1, 1] so Acos never sees rounding overshoot
func ClampUnit(c float64) float64 {
	return math.Max(-1, math.Min(1, c))
}
