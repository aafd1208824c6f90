package score

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrWriteFile wraps failures to create or write an exported file.
var ErrWriteFile = errors.New("write midi file")

// SMF wraps the track in a single-track (format 0) file with a metrical
// resolution of t.TicksPerBeat. No tempo event is written. t must be the
// validated timing the track was compiled with.
func (tr Track) SMF(t Timing) *smf.SMF {
	file := smf.New()
	file.TimeFormat = smf.MetricTicks(t.TicksPerBeat)

	var out smf.Track
	for _, ev := range tr {
		if ev.Kind == EndOfTrackEvent {
			out.Close(ev.Delta)
			break
		}
		out.Add(ev.Delta, ev.Message())
	}
	if !out.IsClosed() {
		out.Close(0)
	}
	// Add only fails on an unclosed track
	_ = file.Add(out)
	return file
}

// SMF compiles the score with DefaultTiming and wraps it in a MIDI file.
func (s *Score) SMF() *smf.SMF {
	return s.Track().SMF(DefaultTiming)
}

// Encode serializes the track as a Standard MIDI File at resolution t.
func (tr Track) Encode(w io.Writer, t Timing) (int64, error) {
	n, err := tr.SMF(t).WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	return n, nil
}

// Save writes the track to path at resolution t, replacing any existing file.
// It returns the number of bytes written.
func (tr Track) Save(path string, t Timing) (n int64, err error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteFile, cerr)
		}
	}()

	return tr.Encode(f, t)
}

// WriteTo serializes the score as a Standard MIDI File.
func (s *Score) WriteTo(w io.Writer) (int64, error) {
	return s.Track().Encode(w, DefaultTiming)
}

// Save writes the score to path, replacing any existing file.
func (s *Score) Save(path string) error {
	_, err := s.Track().Save(path, DefaultTiming)
	return err
}
