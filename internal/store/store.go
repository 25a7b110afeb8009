// Package store provides the in-memory cue list.
// It keeps cues in positional order and applies the editor's intents to them:
// append, remove, the positional moves, and renumbering. Position and number
// are independent; nothing in this package re-sorts the list by number.
//
// A Store is not safe for concurrent use. It is owned by a single event loop
// that applies intents one at a time.
package store

import (
	"errors"
	"fmt"

	"github.com/robby/cuelist/internal/domain"
)

// ErrCueNotFound indicates the requested cue does not exist.
var ErrCueNotFound = errors.New("cue not found")

// Store holds an ordered list of cues addressed by zero-based position.
// Index-based operations ignore out-of-range indices and report false,
// so a stale or boundary intent (e.g. "move up" on the first cue) is harmless.
type Store struct {
	cues []domain.Cue

	listeners    []subscription
	nextListener int
}

// New creates a new empty Store instance.
func New() *Store {
	return &Store{}
}

// Len returns the number of cues.
func (s *Store) Len() int {
	return len(s.cues)
}

// Get returns the cue at index i, or ErrCueNotFound if i is out of range.
func (s *Store) Get(i int) (domain.Cue, error) {
	if !s.inRange(i) {
		return domain.Cue{}, fmt.Errorf("%w: index %d", ErrCueNotFound, i)
	}
	return s.cues[i], nil
}

// GetCue returns the cue with the given identity, or ErrCueNotFound.
func (s *Store) GetCue(id domain.CueID) (domain.Cue, error) {
	i, ok := s.IndexOf(id)
	if !ok {
		return domain.Cue{}, fmt.Errorf("%w: %s", ErrCueNotFound, id)
	}
	return s.cues[i], nil
}

// IndexOf resolves an identity to its current position.
func (s *Store) IndexOf(id domain.CueID) (int, bool) {
	for i := range s.cues {
		if s.cues[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Cues returns the cues in positional order.
// The slice is a copy; modifying it does not affect the store.
func (s *Store) Cues() []domain.Cue {
	result := make([]domain.Cue, len(s.cues))
	copy(result, s.cues)
	return result
}

// IDs returns the cue identities in positional order.
func (s *Store) IDs() []domain.CueID {
	ids := make([]domain.CueID, len(s.cues))
	for i := range s.cues {
		ids[i] = s.cues[i].ID
	}
	return ids
}

// Append creates a cue with a fresh identity, an unset number and the given
// label, places it at the end of the list, and returns its identity.
func (s *Store) Append(label string) domain.CueID {
	cue := domain.NewCue(label)
	s.cues = append(s.cues, cue)
	s.notify(Event{Kind: EventAppended, Index: len(s.cues) - 1, From: -1, Cue: cue})
	return cue.ID
}

// RemoveAt removes the cue at index i. Later cues shift down by one.
func (s *Store) RemoveAt(i int) bool {
	if !s.inRange(i) {
		return false
	}

	cue := s.cues[i]
	s.cues = append(s.cues[:i], s.cues[i+1:]...)
	s.notify(Event{Kind: EventRemoved, Index: i, From: i, Cue: cue})
	return true
}

// PopBack removes the last cue, if any.
func (s *Store) PopBack() bool {
	return s.RemoveAt(len(s.cues) - 1)
}

// MoveTo moves the cue at from so that it ends up at index to. Cues in
// between shift by one toward the vacated slot. The cue's number is not touched.
func (s *Store) MoveTo(from, to int) bool {
	if !s.inRange(from) || !s.inRange(to) || from == to {
		return false
	}

	cue := s.cues[from]
	if from < to {
		copy(s.cues[from:to], s.cues[from+1:to+1])
	} else {
		copy(s.cues[to+1:from+1], s.cues[to:from])
	}
	s.cues[to] = cue

	s.notify(Event{Kind: EventMoved, Index: to, From: from, Cue: cue})
	return true
}

// MoveToFront moves the cue at index i to position 0.
func (s *Store) MoveToFront(i int) bool {
	return s.MoveTo(i, 0)
}

// MoveUp swaps the cue at index i with the one before it.
func (s *Store) MoveUp(i int) bool {
	return s.MoveTo(i, i-1)
}

// MoveDown swaps the cue at index i with the one after it.
func (s *Store) MoveDown(i int) bool {
	return s.MoveTo(i, i+1)
}

// IncrementKey bumps the primary number of the cue at index i.
// See domain.CueNumber.Increment.
func (s *Store) IncrementKey(i int) bool {
	return s.renumber(i, domain.CueNumber.Increment)
}

// DecrementKey lowers the primary number of the cue at index i, clearing it
// below 1. See domain.CueNumber.Decrement.
func (s *Store) DecrementKey(i int) bool {
	return s.renumber(i, domain.CueNumber.Decrement)
}

// IncrementSecondary bumps the secondary number of the cue at index i.
func (s *Store) IncrementSecondary(i int) bool {
	return s.renumber(i, domain.CueNumber.IncrementSecondary)
}

// DecrementSecondary lowers the secondary number of the cue at index i.
func (s *Store) DecrementSecondary(i int) bool {
	return s.renumber(i, domain.CueNumber.DecrementSecondary)
}

// SetNumber assigns a number to the cue at index i outright.
func (s *Store) SetNumber(i int, number domain.CueNumber) bool {
	return s.renumber(i, func(domain.CueNumber) domain.CueNumber { return number })
}

// SetLabel replaces the label and notes of the cue at index i.
func (s *Store) SetLabel(i int, label, notes string) bool {
	if !s.inRange(i) {
		return false
	}

	cue := &s.cues[i]
	if cue.Label == label && cue.Notes == notes {
		return false
	}
	cue.Label = label
	cue.Notes = notes
	s.notify(Event{Kind: EventRelabeled, Index: i, From: i, Cue: *cue})
	return true
}

// OutOfOrder returns the positions whose cue sorts before the cue above it,
// i.e. where the running order currently contradicts the numbering.
func (s *Store) OutOfOrder() []int {
	var positions []int
	for i := 1; i < len(s.cues); i++ {
		if domain.Compare(s.cues[i-1].Number, s.cues[i].Number) > 0 {
			positions = append(positions, i)
		}
	}
	return positions
}

// Clear removes every cue. Listeners stay subscribed.
func (s *Store) Clear() {
	if len(s.cues) == 0 {
		return
	}
	s.cues = nil
	s.notify(Event{Kind: EventCleared, Index: -1, From: -1})
}

// renumber replaces the number of the cue at index i with fn(number).
// It reports false, and does not notify, when i is out of range or the
// number is unchanged.
func (s *Store) renumber(i int, fn func(domain.CueNumber) domain.CueNumber) bool {
	if !s.inRange(i) {
		return false
	}

	cue := &s.cues[i]
	next := fn(cue.Number)
	if next == cue.Number {
		return false
	}
	cue.Number = next
	s.notify(Event{Kind: EventRenumbered, Index: i, From: i, Cue: *cue})
	return true
}

func (s *Store) inRange(i int) bool {
	return i >= 0 && i < len(s.cues)
}
