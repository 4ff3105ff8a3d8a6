package parameter

import (
	"math"
	"time"
)

// Screen
const (
	// ScreenWidth is the number of rendered columns (one ray per column)
	ScreenWidth = 120

	// ScreenHeight is the number of rendered rows
	ScreenHeight = 40
)

// Projection & Marching
const (
	// FOV is the horizontal field of view in radians
	FOV = math.Pi / 4

	// Depth is the maximum render distance in map cells
	Depth = 16.0

	// StepSize is the ray march increment in map cells
	StepSize = 0.1

	// BoundaryAngle is the corner collinearity threshold (radians) that marks a tile seam
	BoundaryAngle = 0.01
)

// Movement
const (
	// Speed is walking speed in cells per second
	Speed = 5.0

	// TurnFactor scales Speed into rotation speed (radians per second)
	TurnFactor = 0.75

	// StartX, StartY, StartHeading place the observer in the reference map
	StartX       = 14.7
	StartY       = 5.09
	StartHeading = 0.0
)

// Frame Loop
const (
	// FrameInterval drives the render ticker (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameElapsed caps per-frame elapsed time so a stalled frame cannot teleport the observer
	MaxFrameElapsed = 250 * time.Millisecond
)

// Overlay
const (
	// StatusWidth bounds the status line, matching the fixed 40-char print
	StatusWidth = 40

	// InsetRowOffset leaves the first row for the status line
	InsetRowOffset = 1
)
