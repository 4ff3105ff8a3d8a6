package parameter

import "time"

// Bump tone played when a move is rejected by a wall
const (
	BumpFrequency = 110.0
	BumpDuration  = 90 * time.Millisecond
	BumpVolume    = 0.25

	// BumpCooldown suppresses overlapping tones while pushing into a wall
	BumpCooldown = 250 * time.Millisecond
)
