package store

import (
	"slices"

	"github.com/robby/cuelist/internal/domain"
)

// EventKind identifies what changed in the store.
type EventKind int

const (
	EventAppended EventKind = iota
	EventRemoved
	EventMoved
	EventRenumbered
	EventRelabeled
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventAppended:
		return "appended"
	case EventRemoved:
		return "removed"
	case EventMoved:
		return "moved"
	case EventRenumbered:
		return "renumbered"
	case EventRelabeled:
		return "relabeled"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event describes a single applied mutation.
type Event struct {
	Kind  EventKind
	Index int        // Position of Cue after the change (before it, for EventRemoved)
	From  int        // Position before the change; differs from Index only for EventMoved
	Cue   domain.Cue // Cue as it is after the change; zero for EventCleared
}

// Listener is called synchronously after every mutation that changed the store.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers fn for change events and returns a function that
// removes it. Listeners run in subscription order and must not mutate the store.
// Unsubscribing from inside a listener takes effect from the next event.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		// A fresh slice leaves the one notify may be ranging over intact.
		s.listeners = slices.DeleteFunc(slices.Clone(s.listeners), func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *Store) notify(ev Event) {
	for _, sub := range s.listeners {
		sub.fn(ev)
	}
}
