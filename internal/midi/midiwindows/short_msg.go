package midiwindows

import (
	"errors"
	"fmt"
)

// ErrShortMessage is returned for messages midiOutShortMsg cannot carry.
var ErrShortMessage = errors.New("not a short MIDI message")

// packShortMessage lays out up to three bytes the way midiOutShortMsg expects:
// status in the low byte, then the two data bytes.
func packShortMessage(msg []byte) (uint32, error) {
	if len(msg) == 0 || len(msg) > 3 {
		return 0, fmt.Errorf("%w: %d bytes", ErrShortMessage, len(msg))
	}
	if msg[0]&0x80 == 0 {
		return 0, fmt.Errorf("%w: missing status byte 0x%02X", ErrShortMessage, msg[0])
	}
	var packed uint32
	for i, b := range msg {
		packed |= uint32(b) << (8 * i)
	}
	return packed, nil
}
