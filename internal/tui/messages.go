// Package tui provides the Bubble Tea models for the cue list editor.
// It renders a store.Store and turns key presses into store intents; all
// list semantics live in the store.
package tui

import "github.com/robby/cuelist/internal/domain"

// ErrorMsg is emitted when an error occurs.
type ErrorMsg struct {
	Err error
}

// QuitMsg is emitted when the user requests to quit.
type QuitMsg struct{}

// intentOp is a cue-level edit requested from the list view.
type intentOp int

const (
	opRemove intentOp = iota
	opMoveUp
	opMoveDown
	opMoveToFront
	opIncrement
	opDecrement
	opIncrementSecondary
	opDecrementSecondary
)

func (op intentOp) String() string {
	switch op {
	case opRemove:
		return "remove"
	case opMoveUp:
		return "move up"
	case opMoveDown:
		return "move down"
	case opMoveToFront:
		return "move to start"
	case opIncrement:
		return "number up"
	case opDecrement:
		return "number down"
	case opIncrementSecondary:
		return "point up"
	case opDecrementSecondary:
		return "point down"
	default:
		return "unknown"
	}
}

// cueIntentMsg carries an edit for one cue. It names the cue by identity,
// not by row, so it still applies to the right cue if the list changed
// between the key press and the message being handled.
type cueIntentMsg struct {
	op intentOp
	id domain.CueID
}

// Custom messages for list and editor transitions.
type (
	appendCueMsg struct {
		label string
	}

	popBackMsg struct{}

	openEditMsg struct {
		id    domain.CueID
		isNew bool
	}

	editSubmittedMsg struct {
		id     domain.CueID
		isNew  bool
		number domain.CueNumber
		label  string
		notes  string
	}

	editCancelledMsg struct{}
)
