package store

import "github.com/robby/cuelist/internal/domain"

// The methods below address a cue by identity instead of position. The
// identity is resolved to the cue's current index when the call is made,
// so an intent captured before other edits still lands on the right cue.
// They report false when the cue no longer exists.

// RemoveCue removes the cue with the given identity.
func (s *Store) RemoveCue(id domain.CueID) bool {
	return s.atCue(id, s.RemoveAt)
}

// MoveCueToFront moves the cue with the given identity to position 0.
func (s *Store) MoveCueToFront(id domain.CueID) bool {
	return s.atCue(id, s.MoveToFront)
}

// MoveCueUp moves the cue with the given identity one position earlier.
func (s *Store) MoveCueUp(id domain.CueID) bool {
	return s.atCue(id, s.MoveUp)
}

// MoveCueDown moves the cue with the given identity one position later.
func (s *Store) MoveCueDown(id domain.CueID) bool {
	return s.atCue(id, s.MoveDown)
}

// IncrementCue bumps the primary number of the cue with the given identity.
func (s *Store) IncrementCue(id domain.CueID) bool {
	return s.atCue(id, s.IncrementKey)
}

// DecrementCue lowers the primary number of the cue with the given identity.
func (s *Store) DecrementCue(id domain.CueID) bool {
	return s.atCue(id, s.DecrementKey)
}

// IncrementCueSecondary bumps the secondary number of the cue with the given identity.
func (s *Store) IncrementCueSecondary(id domain.CueID) bool {
	return s.atCue(id, s.IncrementSecondary)
}

// DecrementCueSecondary lowers the secondary number of the cue with the given identity.
func (s *Store) DecrementCueSecondary(id domain.CueID) bool {
	return s.atCue(id, s.DecrementSecondary)
}

// UpdateCue sets the number, label and notes of the cue with the given identity.
func (s *Store) UpdateCue(id domain.CueID, number domain.CueNumber, label, notes string) bool {
	i, ok := s.IndexOf(id)
	if !ok {
		return false
	}
	renumbered := s.SetNumber(i, number)
	relabeled := s.SetLabel(i, label, notes)
	return renumbered || relabeled
}

func (s *Store) atCue(id domain.CueID, op func(int) bool) bool {
	i, ok := s.IndexOf(id)
	if !ok {
		return false
	}
	return op(i)
}
