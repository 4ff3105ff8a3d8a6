package input

import "fmt"

// Intent is a discrete action requested by the player
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit

	// Observer
	IntentRotateLeft
	IntentRotateRight
	IntentForward
	IntentBackward

	intentCount
)

// MovementIntents lists observer intents in application order
var MovementIntents = []Intent{IntentRotateLeft, IntentRotateRight, IntentForward, IntentBackward}

var intentNames = [intentCount]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentRotateLeft:  "rotate_left",
	IntentRotateRight: "rotate_right",
	IntentForward:     "forward",
	IntentBackward:    "backward",
}

func (i Intent) String() string {
	if i >= intentCount {
		return fmt.Sprintf("intent(%d)", uint8(i))
	}
	return intentNames[i]
}

// ParseAction resolves a config action name to its intent
func ParseAction(name string) (Intent, error) {
	for i, n := range intentNames {
		if n == name && Intent(i) != IntentNone {
			return Intent(i), nil
		}
	}
	return IntentNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
