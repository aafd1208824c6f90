package contracts

import "errors"

// Errors shared by every output client.
var (
	ErrNoMIDIDevices       = errors.New("no MIDI output devices found")
	ErrInvalidMIDIDevice   = errors.New("invalid MIDI output device")
	ErrNotConnected        = errors.New("no MIDI output device selected")
	ErrPlatformUnsupported = errors.New("MIDI output is not available on this platform")
)

// Sender accepts raw MIDI bytes. Playback only needs this much of a device.
type Sender interface {
	Send(msg []byte) error
}

// ClientMIDI is a MIDI output client: it lists destinations, connects to one
// and sends bytes to it.
type ClientMIDI interface {
	Sender
	ListDevices() ([]DeviceInfo, error) // Lists all available output destinations.
	SelectDevice(deviceID int) error    // Connects to the destination with the given ID.
	Stop() error                        // Closes the connection and releases resources.
}
