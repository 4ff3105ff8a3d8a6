package input

import (
	"time"
)

// HeldKeys approximates key-held state from press events
// Terminals deliver presses and auto-repeats only: a fresh press stays active for the first window,
// which spans the auto-repeat delay, and once repeats arrive each one extends it by the shorter repeat window
type HeldKeys struct {
	first     time.Duration
	repeat    time.Duration
	last      [intentCount]time.Time
	repeating [intentCount]bool
}

// NewHeldKeys creates a tracker with the first-press and repeat hold windows
func NewHeldKeys(first, repeat time.Duration) *HeldKeys {
	if first < repeat {
		first = repeat
	}
	return &HeldKeys{first: first, repeat: repeat}
}

// Press records a press of intent at now
// A press while the intent is still held counts as an auto-repeat
func (h *HeldKeys) Press(i Intent, now time.Time) {
	if i == IntentNone || i >= intentCount {
		return
	}
	h.repeating[i] = h.Held(i, now)
	h.last[i] = now
}

// Release forgets an intent immediately
func (h *HeldKeys) Release(i Intent) {
	if i >= intentCount {
		return
	}
	h.last[i] = time.Time{}
	h.repeating[i] = false
}

// Held reports whether intent is active at now
func (h *HeldKeys) Held(i Intent, now time.Time) bool {
	if i >= intentCount {
		return false
	}
	t := h.last[i]
	if t.IsZero() {
		return false
	}
	window := h.first
	if h.repeating[i] {
		window = h.repeat
	}
	return now.Sub(t) < window
}

// Active returns held movement intents in application order
func (h *HeldKeys) Active(now time.Time) []Intent {
	var active []Intent
	for _, i := range MovementIntents {
		if h.Held(i, now) {
			active = append(active, i)
		}
	}
	return active
}
