package engine

import (
	"github.com/lixenwraith/ray-caster/frame"
	"github.com/lixenwraith/ray-caster/input"
	"github.com/lixenwraith/ray-caster/status"
	"github.com/lixenwraith/ray-caster/world"
)

// RenderState is everything a frame reads or mutates, owned by the frame loop
type RenderState struct {
	Config   RenderConfig
	Map      *world.Grid
	Observer Observer
	Frame    *frame.Frame
	Stats    *status.Stats
}

// NewRenderState validates settings and allocates the frame
func NewRenderState(s Settings) (*RenderState, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &RenderState{
		Config:   s.Render,
		Map:      s.Grid,
		Observer: s.Start.Observer(),
		Frame:    frame.New(s.Render.ScreenWidth, s.Render.ScreenHeight),
		Stats:    status.NewStats(),
	}, nil
}

// Apply moves the observer for one frame of elapsed seconds
// Returns true if any move was rejected by a wall
func (st *RenderState) Apply(intents []input.Intent, elapsed float64) bool {
	turn := st.Config.TurnSpeed() * elapsed
	step := st.Config.Speed * elapsed
	bumped := false

	for _, intent := range intents {
		switch intent {
		case input.IntentRotateLeft:
			st.Observer.Rotate(-turn)
		case input.IntentRotateRight:
			st.Observer.Rotate(turn)
		case input.IntentForward:
			if !st.Observer.Move(st.Map, step) {
				bumped = true
			}
		case input.IntentBackward:
			if !st.Observer.Move(st.Map, -step) {
				bumped = true
			}
		}
	}
	return bumped
}
