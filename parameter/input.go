package parameter

import "time"

// Terminal key-hold approximation
const (
	// FirstHoldWindow keeps a fresh press active across the auto-repeat delay (typically 250-600ms)
	FirstHoldWindow = 600 * time.Millisecond

	// RepeatHoldWindow keeps a repeating key active between repeats (~30-50ms apart) and stops promptly on release
	RepeatHoldWindow = 150 * time.Millisecond
)
