package status

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestRateSmoothing(t *testing.T) {
	var r Rate
	if r.Value() != 0 {
		t.Errorf("Expected zero value 0, got %f", r.Value())
	}

	r.Observe(60)
	if r.Value() != 60 {
		t.Errorf("Expected first sample to seed 60, got %f", r.Value())
	}

	r.Observe(30)
	if want := 60 + RateSmoothing*(30-60); math.Abs(r.Value()-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, r.Value())
	}

	// Converges on a steady input
	for i := 0; i < 500; i++ {
		r.Observe(30)
	}
	if math.Abs(r.Value()-30) > 1e-6 {
		t.Errorf("Expected convergence to 30, got %f", r.Value())
	}
}

func TestRecordFrame(t *testing.T) {
	s := NewStats()
	s.RecordFrame(0.5, 120, 2*time.Millisecond)
	s.RecordFrame(0.25, 120, 3*time.Millisecond)

	if s.Frames.Load() != 2 {
		t.Errorf("Expected 2 frames, got %d", s.Frames.Load())
	}
	if s.Rays.Load() != 240 {
		t.Errorf("Expected 240 rays, got %d", s.Rays.Load())
	}
	if want := 2 + RateSmoothing*(4-2); math.Abs(s.FPS.Value()-want) > 1e-9 {
		t.Errorf("Expected smoothed FPS %f, got %f", want, s.FPS.Value())
	}
	if time.Duration(s.CastTime.Load()) != 3*time.Millisecond {
		t.Errorf("Expected last cast 3ms, got %v", time.Duration(s.CastTime.Load()))
	}

	s.RecordBump()
	if !strings.Contains(s.Summary(), "rays=240 bumps=1") {
		t.Errorf("Unexpected summary %q", s.Summary())
	}
}

func TestFPSZeroElapsed(t *testing.T) {
	if FPS(0) != 0 || FPS(-1) != 0 {
		t.Error("Expected zero FPS for non-positive elapsed")
	}
}

func TestStatsConcurrentRead(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.RecordFrame(0.016, 120, time.Millisecond)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = s.FPS.Value()
			_ = s.Summary()
		}
	}()
	wg.Wait()

	if s.Frames.Load() != 1000 {
		t.Errorf("Expected 1000 frames, got %d", s.Frames.Load())
	}
}
