package input

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultKeyTableResolve(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), IntentForward},
		{"upper W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), IntentForward},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), IntentRotateLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), IntentRotateRight},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), IntentBackward},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentRotateLeft},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentForward},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Resolve(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[render]
fov = 1.0

[keys]
i = "forward"
K = "backward"
space = "quit"
left = "rotate_right"
`)

	kt, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}

	if kt.Runes['i'] != IntentForward {
		t.Errorf("Expected 'i' forward, got %v", kt.Runes['i'])
	}
	if kt.Runes['k'] != IntentBackward {
		t.Errorf("Expected 'K' lowered to 'k' backward, got %v", kt.Runes['k'])
	}
	if kt.Runes[' '] != IntentQuit {
		t.Errorf("Expected space quit, got %v", kt.Runes[' '])
	}
	if kt.Keys[tcell.KeyLeft] != IntentRotateRight {
		t.Errorf("Expected left rotate_right, got %v", kt.Keys[tcell.KeyLeft])
	}

	base := DefaultKeyTable()
	base.Merge(kt)
	if base.Runes['w'] != IntentForward || base.Runes['i'] != IntentForward {
		t.Error("Expected merge to keep defaults and add overrides")
	}
	if base.Keys[tcell.KeyLeft] != IntentRotateRight {
		t.Error("Expected merge to replace left binding")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown action", "[keys]\nw = \"jump\"\n", ErrUnknownAction},
		{"unknown key", "[keys]\npageup = \"forward\"\n", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := LoadKeyConfig([]byte("[keys\n")); err == nil {
		t.Error("Expected parse error for malformed TOML")
	}
}

func TestLoadKeyConfigEmpty(t *testing.T) {
	kt, err := LoadKeyConfig(nil)
	if err != nil {
		t.Fatalf("Expected no error for empty config, got %v", err)
	}
	if len(kt.Runes) != 0 || len(kt.Keys) != 0 {
		t.Error("Expected empty override table")
	}
}

func TestParseAction(t *testing.T) {
	for _, i := range append([]Intent{IntentQuit}, MovementIntents...) {
		got, err := ParseAction(i.String())
		if err != nil || got != i {
			t.Errorf("Expected %v from %q, got %v (%v)", i, i.String(), got, err)
		}
	}
	if _, err := ParseAction("none"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected none to be rejected, got %v", err)
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(IntentForward, t0)
	h.Press(IntentRotateLeft, t0.Add(50*time.Millisecond))

	active := h.Active(t0.Add(60 * time.Millisecond))
	if len(active) != 2 || active[0] != IntentRotateLeft || active[1] != IntentForward {
		t.Errorf("Expected [rotate_left forward], got %v", active)
	}

	active = h.Active(t0.Add(120 * time.Millisecond))
	if len(active) != 1 || active[0] != IntentRotateLeft {
		t.Errorf("Expected forward expired, got %v", active)
	}

	h.Release(IntentRotateLeft)
	if len(h.Active(t0.Add(120*time.Millisecond))) != 0 {
		t.Error("Expected release to clear intent")
	}

	h.Press(IntentQuit, t0)
	for _, i := range h.Active(t0) {
		if i == IntentQuit {
			t.Error("Expected quit excluded from movement intents")
		}
	}
}

func TestEventSourcePoll(t *testing.T) {
	events := make(chan tcell.Event, 8)
	src := NewEventSource(events, DefaultKeyTable(), 100*time.Millisecond, 100*time.Millisecond)
	now := time.Unix(2000, 0)

	events <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	events <- tcell.NewEventResize(80, 24)

	intents, quit := src.Poll(now)
	if quit {
		t.Fatal("Expected no quit")
	}
	if len(intents) != 2 || intents[0] != IntentRotateRight || intents[1] != IntentForward {
		t.Errorf("Expected [rotate_right forward], got %v", intents)
	}

	// No new events: keys stay held inside the window
	intents, _ = src.Poll(now.Add(50 * time.Millisecond))
	if len(intents) != 2 {
		t.Errorf("Expected held intents, got %v", intents)
	}

	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if _, quit := src.Poll(now); !quit {
		t.Error("Expected quit on q")
	}

	close(events)
	if _, quit := src.Poll(now); !quit {
		t.Error("Expected quit on closed channel")
	}
}

func TestHeldKeysBridgesRepeatDelay(t *testing.T) {
	h := NewHeldKeys(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(3000, 0)

	// Terminal auto-repeat: first repeat after 400ms, then every 40ms
	h.Press(IntentForward, t0)
	for _, at := range []time.Duration{50, 150, 300, 399} {
		if !h.Held(IntentForward, t0.Add(at*time.Millisecond)) {
			t.Errorf("Expected forward held %dms into the repeat delay", at)
		}
	}

	last := t0
	for ms := 400; ms <= 600; ms += 40 {
		last = t0.Add(time.Duration(ms) * time.Millisecond)
		h.Press(IntentForward, last)
		if !h.Held(IntentForward, last.Add(39*time.Millisecond)) {
			t.Errorf("Expected forward held between repeats at %dms", ms)
		}
	}

	// Once repeating, release is detected after the short window
	if h.Held(IntentForward, last.Add(100*time.Millisecond)) {
		t.Error("Expected repeating key to stop within the repeat window")
	}

	// A fresh press after release gets the long window again
	next := last.Add(time.Second)
	h.Press(IntentForward, next)
	if !h.Held(IntentForward, next.Add(300*time.Millisecond)) {
		t.Error("Expected fresh press to use the first-press window")
	}
}

func TestNewHeldKeysFirstNotShorterThanRepeat(t *testing.T) {
	h := NewHeldKeys(10*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(4000, 0)
	h.Press(IntentBackward, t0)
	if !h.Held(IntentBackward, t0.Add(50*time.Millisecond)) {
		t.Error("Expected first window raised to the repeat window")
	}
}
