package status

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects per-run frame metrics
// The frame loop writes, displays and the status line read
type Stats struct {
	Frames   atomic.Int64
	Rays     atomic.Int64
	Bumps    atomic.Int64
	FPS      Rate         // smoothed frames per second
	CastTime atomic.Int64 // nanoseconds spent casting the last frame
}

// NewStats creates zeroed stats
func NewStats() *Stats {
	return &Stats{}
}

// RecordFrame updates counters after a frame is rendered
func (s *Stats) RecordFrame(elapsed float64, rays int, cast time.Duration) {
	s.Frames.Add(1)
	s.Rays.Add(int64(rays))
	s.CastTime.Store(int64(cast))
	if elapsed > 0 {
		s.FPS.Observe(FPS(elapsed))
	}
}

// RecordBump counts a rejected move
func (s *Stats) RecordBump() {
	s.Bumps.Add(1)
}

// Summary renders the extended status suffix
func (s *Stats) Summary() string {
	return fmt.Sprintf("rays=%d bumps=%d cast=%s avg=%.1f", s.Rays.Load(), s.Bumps.Load(),
		time.Duration(s.CastTime.Load()), s.FPS.Value())
}

// FPS is 1/elapsed, zero when no time has passed
func FPS(elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return 1 / elapsed
}
