// Package domain defines the value types of a cue list: cues, their identities,
// and the two-level cue numbers they are compared and displayed by.
// Nothing here knows about list positions or rendering.
package domain

import "github.com/google/uuid"

// CueID is the stable identity of a cue. It is assigned once at creation,
// survives every move and renumber, and is never reused.
type CueID uuid.UUID

// NilCueID is the zero identity; no cue ever carries it.
var NilCueID = CueID(uuid.Nil)

// NewCueID returns a fresh random identity.
func NewCueID() CueID {
	return CueID(uuid.New())
}

// String returns the canonical uuid form.
func (id CueID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first block of the uuid, enough to tell cues apart on screen.
func (id CueID) Short() string {
	return id.String()[:8]
}

// Cue is a single entry in a cue list.
type Cue struct {
	ID     CueID     // Stable identity
	Number CueNumber // Display/comparison key, independent of position
	Label  string    // Free-form label shown next to the number
	Notes  string    // Operator notes (opaque)
}

// NewCue returns a cue with a fresh identity, an unset number and the given label.
func NewCue(label string) Cue {
	return Cue{
		ID:    NewCueID(),
		Label: label,
	}
}
