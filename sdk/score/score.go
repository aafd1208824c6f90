package score

import "slices"

// Score is an unordered bag of notes kept in a slice. Mutators work in place
// and return the receiver so calls can be chained:
//
//	s := score.New().AddNote(60, 4, 0, 0).AddNote(64, 4, 4, 0)
//
// A Score has no internal locking. Compiling only reads it, so concurrent
// compilation is safe as long as nobody mutates the score at the same time.
type Score struct {
	notes []Note
}

// New returns an empty score.
func New() *Score {
	return &Score{}
}

// WithCapacity returns an empty score with room for n notes.
func WithCapacity(n int) *Score {
	return &Score{notes: make([]Note, 0, n)}
}

// From builds a score from any slice of note-like values, in order.
func From[T NoteLike](notes []T) *Score {
	s := WithCapacity(len(notes))
	for _, n := range notes {
		s.notes = append(s.notes, n.Note())
	}
	return s
}

func (s *Score) Len() int      { return len(s.notes) }
func (s *Score) IsEmpty() bool { return len(s.notes) == 0 }
func (s *Score) Cap() int      { return cap(s.notes) }

// Notes exposes the underlying slice. Writes through it change the score.
func (s *Score) Notes() []Note {
	return s.notes
}

// Reserve makes room for at least additional more notes.
func (s *Score) Reserve(additional int) {
	s.notes = slices.Grow(s.notes, additional)
}

// ShrinkTo lowers the capacity to max(len, minCapacity) when that is smaller
// than the current capacity.
func (s *Score) ShrinkTo(minCapacity int) {
	target := max(len(s.notes), minCapacity)
	if target >= cap(s.notes) {
		return
	}
	shrunk := make([]Note, len(s.notes), target)
	copy(shrunk, s.notes)
	s.notes = shrunk
}

func (s *Score) ShrinkToFit() {
	s.ShrinkTo(0)
}

// Clear drops every note but keeps the allocated capacity.
func (s *Score) Clear() {
	s.notes = s.notes[:0]
}

func (s *Score) Add(n NoteLike) *Score {
	s.notes = append(s.notes, n.Note())
	return s
}

func (s *Score) AddNote(pitch uint8, duration, position uint16, channel uint8) *Score {
	return s.Add(NewNote(pitch, duration, position, channel))
}

// Extend appends notes in the order given.
func (s *Score) Extend(notes ...NoteLike) *Score {
	s.Reserve(len(notes))
	for _, n := range notes {
		s.Add(n)
	}
	return s
}

// ExtendFrom appends a typed slice of notes in order. Go cannot pass a []T
// to Extend's variadic NoteLike, hence the free function.
func ExtendFrom[T NoteLike](s *Score, notes []T) *Score {
	s.Reserve(len(notes))
	for _, n := range notes {
		s.notes = append(s.notes, n.Note())
	}
	return s
}

// Remove deletes the first note equal to n by moving the last note into its
// slot. The order of the remaining notes is not kept. Removing a note that is
// not in the score does nothing.
func (s *Score) Remove(n NoteLike) *Score {
	target := n.Note()
	idx := slices.Index(s.notes, target)
	if idx < 0 {
		return s
	}
	last := len(s.notes) - 1
	s.notes[idx] = s.notes[last]
	s.notes = s.notes[:last]
	return s
}

func (s *Score) RemoveNote(pitch uint8, duration, position uint16, channel uint8) *Score {
	return s.Remove(NewNote(pitch, duration, position, channel))
}

// Purge removes each given note once, ignoring misses.
func (s *Score) Purge(notes ...NoteLike) *Score {
	for _, n := range notes {
		s.Remove(n)
	}
	return s
}

// Clone returns an independent copy of the score.
func (s *Score) Clone() *Score {
	return &Score{notes: slices.Clone(s.notes)}
}

// Equal reports whether both scores hold the same notes in the same order.
func (s *Score) Equal(other *Score) bool {
	return slices.Equal(s.notes, other.notes)
}
