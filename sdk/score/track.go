package score

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gitlab.com/gomidi/midi/v2"
)

const (
	// DefaultTicksPerBeat is the file resolution: 24 ticks per crotchet.
	DefaultTicksPerBeat uint16 = 24
	// DefaultBPM is the fixed playback tempo.
	DefaultBPM uint16 = 120

	semiquaversPerBeat = 4

	noteOnVelocity  uint8 = 127
	noteOffVelocity uint8 = 0
)

var (
	ErrInexactResolution = errors.New("ticks per beat must be a positive multiple of 4")
	ErrZeroTempo         = errors.New("tempo must be at least 1 bpm")
	ErrResolutionTooFine = errors.New("ticks per beat must fit a 15-bit file division (max 32767)")
)

// MaxTicksPerBeat is the largest metrical division a MIDI file header can hold.
const MaxTicksPerBeat uint16 = 0x7FFF

// Timing holds the resolution and tempo used to compile and pace a track.
type Timing struct {
	TicksPerBeat uint16
	BPM          uint16
}

// DefaultTiming is 24 ticks per beat at 120 bpm.
var DefaultTiming = Timing{TicksPerBeat: DefaultTicksPerBeat, BPM: DefaultBPM}

// Validate rejects resolutions that cannot represent a semiquaver exactly or
// do not fit the file header, and a zero tempo.
func (t Timing) Validate() error {
	if t.TicksPerBeat == 0 || t.TicksPerBeat%semiquaversPerBeat != 0 {
		return fmt.Errorf("%w: %d", ErrInexactResolution, t.TicksPerBeat)
	}
	if t.TicksPerBeat > MaxTicksPerBeat {
		return fmt.Errorf("%w: %d", ErrResolutionTooFine, t.TicksPerBeat)
	}
	if t.BPM == 0 {
		return ErrZeroTempo
	}
	return nil
}

// Ticks converts semiquavers to ticks.
func (t Timing) Ticks(semiquavers uint32) uint32 {
	return semiquavers * uint32(t.TicksPerBeat) / semiquaversPerBeat
}

// Delay is the wall-clock wait for a delta of ticks, truncated to whole
// milliseconds.
func (t Timing) Delay(ticks uint32) time.Duration {
	ms := uint64(ticks) * 60000 / uint64(t.TicksPerBeat) / uint64(t.BPM)
	return time.Duration(ms) * time.Millisecond
}

// EventKind tells note on, note off and end of track apart.
type EventKind uint8

const (
	NoteOnEvent EventKind = iota
	NoteOffEvent
	EndOfTrackEvent
)

func (k EventKind) String() string {
	switch k {
	case NoteOnEvent:
		return "NoteOn"
	case NoteOffEvent:
		return "NoteOff"
	case EndOfTrackEvent:
		return "EndOfTrack"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one entry of a compiled track. Delta is in ticks since the
// previous event.
type Event struct {
	Delta    uint32
	Kind     EventKind
	Channel  uint8
	Key      uint8
	Velocity uint8
}

// Message returns the channel voice bytes for note events and nil for the
// end of track marker.
func (e Event) Message() midi.Message {
	switch e.Kind {
	case NoteOnEvent:
		return midi.NoteOn(e.Channel, e.Key, e.Velocity)
	case NoteOffEvent:
		return midi.NoteOffVelocity(e.Channel, e.Key, e.Velocity)
	default:
		return nil
	}
}

func (e Event) String() string {
	if e.Kind == EndOfTrackEvent {
		return fmt.Sprintf("+%d %s", e.Delta, e.Kind)
	}
	return fmt.Sprintf("+%d %s ch=%d key=%d vel=%d", e.Delta, e.Kind, e.Channel, e.Key, e.Velocity)
}

// Track is a compiled, delta-encoded event list that always ends with an
// end of track event.
type Track []Event

// Absolute returns the running tick position of every event.
func (tr Track) Absolute() []uint32 {
	abs := make([]uint32, len(tr))
	var now uint32
	for i, ev := range tr {
		now += ev.Delta
		abs[i] = now
	}
	return abs
}

// Duration is the wall-clock length of the track when played with t.
func (tr Track) Duration(t Timing) time.Duration {
	var total time.Duration
	for _, ev := range tr {
		total += t.Delay(ev.Delta)
	}
	return total
}

type timedEvent struct {
	at uint32
	ev Event
}

// Track compiles the score with DefaultTiming.
func (s *Score) Track() Track {
	return s.Compile(DefaultTiming)
}

// Compile turns the notes into a Track. Each note yields a note on at its
// position and a note off at its end. Events are stable sorted by time only,
// so simultaneous events keep the order in which their notes appear in the
// score. Compile does not modify the score. t is not checked here: callers
// taking a Timing from outside should Validate it first, since a resolution
// that is not a multiple of 4 truncates every delta.
func (s *Score) Compile(t Timing) Track {
	timed := make([]timedEvent, 0, 2*len(s.notes))
	for _, n := range s.notes {
		timed = append(timed,
			timedEvent{at: uint32(n.Position), ev: Event{Kind: NoteOnEvent, Channel: n.Channel, Key: n.Pitch, Velocity: noteOnVelocity}},
			timedEvent{at: n.End(), ev: Event{Kind: NoteOffEvent, Channel: n.Channel, Key: n.Pitch, Velocity: noteOffVelocity}},
		)
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].at < timed[j].at
	})

	track := make(Track, 0, len(timed)+1)
	var prev uint32
	for _, te := range timed {
		ev := te.ev
		ev.Delta = t.Ticks(te.at - prev)
		prev = te.at
		track = append(track, ev)
	}
	return append(track, Event{Kind: EndOfTrackEvent})
}
