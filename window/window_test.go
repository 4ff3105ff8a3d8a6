package window

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ray-caster/input"
	"github.com/lixenwraith/ray-caster/parameter"
	"github.com/lixenwraith/ray-caster/render"
)

func fakeKeys(held, just []ebiten.Key) KeyState {
	return KeyState{
		Pressed:     func(k ebiten.Key) bool { return slices.Contains(held, k) },
		JustPressed: func(k ebiten.Key) bool { return slices.Contains(just, k) },
	}
}

func TestKeyboardPollOrder(t *testing.T) {
	held := []ebiten.Key{ebiten.KeyUp, ebiten.KeyA, ebiten.KeyLeft}
	kb := NewKeyboard(DefaultBindings(), fakeKeys(held, nil))

	intents, quit := kb.Poll(time.Now())
	if quit {
		t.Fatal("Expected no quit")
	}
	want := []input.Intent{input.IntentRotateLeft, input.IntentForward}
	if !reflect.DeepEqual(intents, want) {
		t.Errorf("Expected %v, got %v", want, intents)
	}
}

func TestKeyboardPollQuit(t *testing.T) {
	held := []ebiten.Key{ebiten.KeyW, ebiten.KeyEscape}

	// Holding escape from a previous tick does not quit
	kb := NewKeyboard(DefaultBindings(), fakeKeys(held, nil))
	if _, quit := kb.Poll(time.Now()); quit {
		t.Error("Expected held key without press edge not to quit")
	}

	kb = NewKeyboard(DefaultBindings(), fakeKeys(held, []ebiten.Key{ebiten.KeyEscape}))
	intents, quit := kb.Poll(time.Now())
	if !quit || intents != nil {
		t.Errorf("Expected quit with no intents, got quit=%v intents=%v", quit, intents)
	}
}

func TestKeyboardPollIdle(t *testing.T) {
	kb := NewKeyboard(DefaultBindings(), fakeKeys(nil, nil))
	if intents, quit := kb.Poll(time.Now()); quit || len(intents) != 0 {
		t.Errorf("Expected idle poll, got quit=%v intents=%v", quit, intents)
	}
}

func TestColorRuns(t *testing.T) {
	row := []rune("██▓  ##P")
	runs := colorRuns(row)

	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d: %+v", len(runs), runs)
	}

	tests := []struct {
		start int
		text  string
	}{
		{0, "██"},
		{2, "▓"},
		{5, "##"},
		{7, "P"},
	}
	for i, tt := range tests {
		if runs[i].start != tt.start || runs[i].text != tt.text {
			t.Errorf("Run %d: expected (%d, %q), got (%d, %q)", i, tt.start, tt.text, runs[i].start, runs[i].text)
		}
	}
}

func TestColorRunsBlankRow(t *testing.T) {
	if runs := colorRuns([]rune("     ")); len(runs) != 0 {
		t.Errorf("Expected no runs for blank row, got %d", len(runs))
	}
}

func TestGlyphColorMatchesTerminal(t *testing.T) {
	c := GlyphColor(parameter.GlyphWallNear)
	r, g, b := render.RgbWallNear.RGB()
	if int32(c.R) != r || int32(c.G) != g || int32(c.B) != b || c.A != 0xff {
		t.Errorf("Expected %d,%d,%d, got %+v", r, g, b, c)
	}
}

func TestBindingsApplyOverrides(t *testing.T) {
	b := DefaultBindings()
	kt := &input.KeyTable{
		Runes: map[rune]input.Intent{
			'w': input.IntentBackward, // rebinding moves the key off forward
			'k': input.IntentForward,
			'7': input.IntentRotateLeft,
			',': input.IntentQuit, // no window key
		},
		Keys: map[tcell.Key]input.Intent{
			tcell.KeyEnter: input.IntentQuit,
			tcell.KeyCtrlQ: input.IntentQuit, // chord, no window key
		},
	}

	if skipped := b.Apply(kt); skipped != 2 {
		t.Errorf("Expected 2 skipped bindings, got %d", skipped)
	}
	if slices.Contains(b.Move[input.IntentForward], ebiten.KeyW) {
		t.Error("Expected W removed from forward")
	}
	if !slices.Contains(b.Move[input.IntentBackward], ebiten.KeyW) {
		t.Error("Expected W bound to backward")
	}
	if !slices.Contains(b.Move[input.IntentForward], ebiten.KeyK) {
		t.Error("Expected K bound to forward")
	}
	if !slices.Contains(b.Move[input.IntentRotateLeft], ebiten.KeyDigit7) {
		t.Error("Expected 7 bound to rotate left")
	}
	if !slices.Contains(b.Quit, ebiten.KeyEnter) {
		t.Error("Expected Enter bound to quit")
	}

	// Rebound keys drive the keyboard source
	kb := NewKeyboard(b, fakeKeys([]ebiten.Key{ebiten.KeyW}, nil))
	intents, _ := kb.Poll(time.Now())
	if !reflect.DeepEqual(intents, []input.Intent{input.IntentBackward}) {
		t.Errorf("Expected [backward] from W, got %v", intents)
	}
}

func TestBindingsApplyNil(t *testing.T) {
	b := DefaultBindings()
	if skipped := b.Apply(nil); skipped != 0 {
		t.Errorf("Expected nil override to be a no-op, got %d", skipped)
	}
}
