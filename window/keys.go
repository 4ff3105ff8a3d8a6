package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/ray-caster/input"
)

// Bindings maps window keys to observer intents
type Bindings struct {
	Move map[input.Intent][]ebiten.Key
	Quit []ebiten.Key
}

// DefaultBindings mirrors the terminal defaults: WASD or arrows, Q or Escape to quit
func DefaultBindings() Bindings {
	return Bindings{
		Move: map[input.Intent][]ebiten.Key{
			input.IntentRotateLeft:  {ebiten.KeyA, ebiten.KeyLeft},
			input.IntentRotateRight: {ebiten.KeyD, ebiten.KeyRight},
			input.IntentForward:     {ebiten.KeyW, ebiten.KeyUp},
			input.IntentBackward:    {ebiten.KeyS, ebiten.KeyDown},
		},
		Quit: []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape},
	}
}

// KeyState reports whether a key is held and whether it went down this tick
type KeyState struct {
	Pressed     func(ebiten.Key) bool
	JustPressed func(ebiten.Key) bool
}

// EbitenKeys reads live keyboard state, valid only inside Update
func EbitenKeys() KeyState {
	return KeyState{
		Pressed:     ebiten.IsKeyPressed,
		JustPressed: inpututil.IsKeyJustPressed,
	}
}

// Keyboard is an intent source over window key state
type Keyboard struct {
	bindings Bindings
	keys     KeyState
}

// NewKeyboard creates a keyboard source
func NewKeyboard(b Bindings, keys KeyState) *Keyboard {
	return &Keyboard{bindings: b, keys: keys}
}

// Poll reports held movement intents in application order
func (k *Keyboard) Poll(time.Time) ([]input.Intent, bool) {
	for _, key := range k.bindings.Quit {
		if k.keys.JustPressed(key) {
			return nil, true
		}
	}

	var intents []input.Intent
	for _, intent := range input.MovementIntents {
		for _, key := range k.bindings.Move[intent] {
			if k.keys.Pressed(key) {
				intents = append(intents, intent)
				break
			}
		}
	}
	return intents, false
}
