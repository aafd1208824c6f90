//go:build !windows
// +build !windows

package midiwindows

import (
	"github.com/leandrodaf/midiscore/sdk/contracts"
)

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient initializes a dummy MIDI client for non-Windows systems.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("Using dummy MIDI client for non-Windows system")
	return &dummyMIDIClient{
		logger: options.Logger,
	}, nil
}

// ListDevices reports that MIDI output is unavailable on this platform.
func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy MIDI client")
	return nil, contracts.ErrPlatformUnsupported
}

// SelectDevice reports that MIDI output is unavailable on this platform.
func (m *dummyMIDIClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy MIDI client")
	return contracts.ErrPlatformUnsupported
}

// Send always fails.
func (m *dummyMIDIClient) Send(msg []byte) error {
	return contracts.ErrPlatformUnsupported
}

// Stop is a no-op.
func (m *dummyMIDIClient) Stop() error {
	m.logger.Warn("Stop called on dummy MIDI client")
	return nil
}
