package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventSource turns a stream of terminal events into per-frame intents
// Owned by the frame loop goroutine; the channel is fed by the terminal poller
type EventSource struct {
	events <-chan tcell.Event
	table  *KeyTable
	held   *HeldKeys
}

// NewEventSource wraps an event channel with a key table and the first-press and repeat hold windows
func NewEventSource(events <-chan tcell.Event, table *KeyTable, first, repeat time.Duration) *EventSource {
	return &EventSource{
		events: events,
		table:  table,
		held:   NewHeldKeys(first, repeat),
	}
}

// Poll drains pending events without blocking
// Returns the movement intents active at now and whether quit was requested
func (s *EventSource) Poll(now time.Time) ([]Intent, bool) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return nil, true
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				intent := s.table.Resolve(key)
				if intent == IntentQuit {
					return nil, true
				}
				s.held.Press(intent, now)
			}
		default:
			return s.held.Active(now), false
		}
	}
}
