package midi

import (
	"fmt"
	"runtime"

	"github.com/leandrodaf/midiscore/internal/midi/mididarwin"
	"github.com/leandrodaf/midiscore/internal/midi/midirtmidi"
	"github.com/leandrodaf/midiscore/internal/midi/midiwindows"
	"github.com/leandrodaf/midiscore/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no MIDI output client.
var ErrUnsupportedOS = contracts.ErrPlatformUnsupported

// clientInitializers maps OS names to corresponding MIDI output client initializers.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMIDI, error){
	"darwin":  mididarwin.NewMIDIClient,  // macOS (CoreMIDI) output client.
	"windows": midiwindows.NewMIDIClient, // Windows (winmm) output client.
	"linux":   midirtmidi.NewMIDIClient,  // Linux (RtMidi/ALSA) output client.
}

// NewClient initializes a MIDI output client for the current operating system.
// It supports macOS, Windows and Linux, returning ErrUnsupportedOS otherwise.
//
// opts *contracts.ClientOptions: Configuration options for the MIDI client.
//
// Returns:
//   - contracts.ClientMIDI: An instance of the MIDI client.
//   - error: An error if the operating system is unsupported or if initialization fails.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	if initializer, exists := clientInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}

// CloseDrivers releases process-wide driver state. Clients only close their
// own port on Stop, so call this once at shutdown, after the last Stop.
func CloseDrivers() {
	midirtmidi.CloseDriver()
}
