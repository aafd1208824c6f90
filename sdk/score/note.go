package score

import (
	"errors"
	"fmt"
)

// PercussionChannel is the channel General MIDI reserves for drum kits.
// Nothing in this package enforces it.
const PercussionChannel uint8 = 9

// Range errors returned by CheckedNote.
var (
	ErrPitchOutOfRange   = errors.New("pitch out of range (0-127)")
	ErrChannelOutOfRange = errors.New("channel out of range (0-15)")
)

// Note is a single musical event. Duration and Position are counted in
// semiquavers, so four units make one crotchet beat.
type Note struct {
	Pitch    uint8  // MIDI key number (0-127).
	Duration uint16 // Note value in semiquavers.
	Position uint16 // Offset of the note head from the score start, in semiquavers.
	Channel  uint8  // MIDI channel (0-15).
}

// NoteLike is anything that converts to a Note. Score accepts it everywhere a
// note is taken as input.
type NoteLike interface {
	Note() Note
}

// NewNote builds a Note without validating pitch or channel.
func NewNote(pitch uint8, duration, position uint16, channel uint8) Note {
	return Note{Pitch: pitch, Duration: duration, Position: position, Channel: channel}
}

// CheckedNote builds a Note, rejecting pitches above 127 and channels above 15.
func CheckedNote(pitch uint8, duration, position uint16, channel uint8) (Note, error) {
	if pitch >= 128 {
		return Note{}, fmt.Errorf("%w: %d", ErrPitchOutOfRange, pitch)
	}
	if channel >= 16 {
		return Note{}, fmt.Errorf("%w: %d", ErrChannelOutOfRange, channel)
	}
	return NewNote(pitch, duration, position, channel), nil
}

// Note returns n itself so a Note satisfies NoteLike.
func (n Note) Note() Note { return n }

// End is the semiquaver at which the note is released.
func (n Note) End() uint32 {
	return uint32(n.Position) + uint32(n.Duration)
}

// Valid reports whether pitch and channel fit their MIDI ranges.
func (n Note) Valid() bool {
	return n.Pitch < 128 && n.Channel < 16
}

func (n Note) String() string {
	return fmt.Sprintf("note(pitch=%d dur=%d pos=%d ch=%d)", n.Pitch, n.Duration, n.Position, n.Channel)
}

// Tuple3 returns the note without its channel.
func (n Note) Tuple3() Tuple3 {
	return Tuple3{n.Pitch, n.Duration, n.Position}
}

// Tuple4 returns all four fields of the note.
func (n Note) Tuple4() Tuple4 {
	return Tuple4{n.Pitch, n.Duration, n.Position, n.Channel}
}

// Tuple3 is the short (pitch, duration, position) form. Its channel is 0.
type Tuple3 struct {
	Pitch    uint8
	Duration uint16
	Position uint16
}

func (t Tuple3) Note() Note {
	return NewNote(t.Pitch, t.Duration, t.Position, 0)
}

// Tuple4 is the (pitch, duration, position, channel) form.
type Tuple4 struct {
	Pitch    uint8
	Duration uint16
	Position uint16
	Channel  uint8
}

func (t Tuple4) Note() Note {
	return NewNote(t.Pitch, t.Duration, t.Position, t.Channel)
}
