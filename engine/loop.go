package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/ray-caster/frame"
	"github.com/lixenwraith/ray-caster/input"
	"github.com/lixenwraith/ray-caster/parameter"
	"github.com/lixenwraith/ray-caster/status"
)

// Display presents a completed frame
type Display interface {
	Present(f *frame.Frame) error
}

// IntentSource reports the intents active at now, and whether to quit
type IntentSource interface {
	Poll(now time.Time) ([]input.Intent, bool)
}

// Loop drives the per-frame cycle: input, move, cast, shade, compose, present
type Loop struct {
	State    *RenderState
	Renderer *Renderer
	Display  Display
	Source   IntentSource

	// Interval between frames, parameter.FrameInterval when zero
	Interval time.Duration

	// MaxElapsed caps a frame's elapsed time, parameter.MaxFrameElapsed when zero
	MaxElapsed time.Duration

	// OnBump is called when a move is rejected by a wall (optional)
	OnBump func()

	// Now is the clock, time.Now when nil
	Now func() time.Time

	last time.Time
}

func (l *Loop) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Step runs one frame at now
// Returns quit=true when the source requests it; display errors are returned as-is
func (l *Loop) Step(now time.Time) (bool, error) {
	elapsed := 0.0
	if !l.last.IsZero() {
		maxElapsed := l.MaxElapsed
		if maxElapsed == 0 {
			maxElapsed = parameter.MaxFrameElapsed
		}
		d := now.Sub(l.last)
		if d > maxElapsed {
			d = maxElapsed
		}
		if d > 0 {
			elapsed = d.Seconds()
		}
	}
	l.last = now

	intents, quit := l.Source.Poll(now)
	if quit {
		return true, nil
	}

	if l.State.Apply(intents, elapsed) {
		l.State.Stats.RecordBump()
		if l.OnBump != nil {
			l.OnBump()
		}
	}

	cast := l.Renderer.Render(l.State, status.FPS(elapsed))
	l.State.Stats.RecordFrame(elapsed, l.State.Config.ScreenWidth, cast)

	return false, l.Display.Present(l.State.Frame)
}

// Run steps frames on a ticker until quit, a display error, or ctx cancellation
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = parameter.FrameInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// First frame renders immediately so the display is never blank
	l.last = time.Time{}
	if quit, err := l.Step(l.now()); quit || err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			quit, err := l.Step(l.now())
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}
