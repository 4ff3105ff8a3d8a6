package engine

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/lixenwraith/ray-caster/caster"
	"github.com/lixenwraith/ray-caster/parameter"
)

var (
	ErrInvalidScreen   = errors.New("screen dimensions must be positive")
	ErrInvalidFOV      = errors.New("field of view must be in (0, 2π]")
	ErrInvalidDepth    = errors.New("depth must be positive")
	ErrInvalidStep     = errors.New("step size must be positive and below depth")
	ErrInvalidSpeed    = errors.New("speed and turn factor must be non-negative")
	ErrInvalidBoundary = errors.New("boundary angle must be non-negative")
	ErrInvalidWorkers  = errors.New("workers must be non-negative")
)

// RenderConfig holds immutable per-run parameters, validated before the loop starts
type RenderConfig struct {
	ScreenWidth   int     `toml:"screen_width"`
	ScreenHeight  int     `toml:"screen_height"`
	FOV           float64 `toml:"fov"`
	Depth         float64 `toml:"depth"`
	StepSize      float64 `toml:"step_size"`
	Speed         float64 `toml:"speed"`
	TurnFactor    float64 `toml:"turn_factor"`
	BoundaryAngle float64 `toml:"boundary_angle"`
	Workers       int     `toml:"workers"` // 0 = one per CPU
	ShowStats     bool    `toml:"show_stats"`
}

// DefaultRenderConfig returns the 120x40 console defaults
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ScreenWidth:   parameter.ScreenWidth,
		ScreenHeight:  parameter.ScreenHeight,
		FOV:           parameter.FOV,
		Depth:         parameter.Depth,
		StepSize:      parameter.StepSize,
		Speed:         parameter.Speed,
		TurnFactor:    parameter.TurnFactor,
		BoundaryAngle: parameter.BoundaryAngle,
	}
}

// Validate rejects configurations that would break the render loop
func (c RenderConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%dx%d: %w", c.ScreenWidth, c.ScreenHeight, ErrInvalidScreen)
	}
	if !(c.FOV > 0 && c.FOV <= 2*math.Pi) {
		return fmt.Errorf("fov %g: %w", c.FOV, ErrInvalidFOV)
	}
	if !(c.Depth > 0) || math.IsInf(c.Depth, 0) {
		return fmt.Errorf("depth %g: %w", c.Depth, ErrInvalidDepth)
	}
	if !(c.StepSize > 0) || c.StepSize >= c.Depth {
		return fmt.Errorf("step %g: %w", c.StepSize, ErrInvalidStep)
	}
	if !(c.Speed >= 0) || !(c.TurnFactor >= 0) {
		return fmt.Errorf("speed %g turn %g: %w", c.Speed, c.TurnFactor, ErrInvalidSpeed)
	}
	if !(c.BoundaryAngle >= 0) {
		return fmt.Errorf("boundary %g: %w", c.BoundaryAngle, ErrInvalidBoundary)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidWorkers)
	}
	return nil
}

// CasterParams extracts the ray casting subset
func (c RenderConfig) CasterParams() caster.Params {
	return caster.Params{
		ScreenWidth:   c.ScreenWidth,
		FOV:           c.FOV,
		Depth:         c.Depth,
		StepSize:      c.StepSize,
		BoundaryAngle: c.BoundaryAngle,
	}
}

// TurnSpeed is the rotation rate in radians per second
func (c RenderConfig) TurnSpeed() float64 {
	return c.Speed * c.TurnFactor
}

// WorkerCount resolves Workers, never more than one per column
func (c RenderConfig) WorkerCount() int {
	n := c.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}
	if n > c.ScreenWidth {
		n = c.ScreenWidth
	}
	if n < 1 {
		n = 1
	}
	return n
}
