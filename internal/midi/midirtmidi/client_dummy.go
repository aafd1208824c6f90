//go:build !linux
// +build !linux

package midirtmidi

import (
	"github.com/leandrodaf/midiscore/sdk/contracts"
)

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient initializes a dummy MIDI client for non-Linux systems.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("Using dummy MIDI client for non-Linux system")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy MIDI client")
	return nil, contracts.ErrPlatformUnsupported
}

func (m *dummyMIDIClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy MIDI client")
	return contracts.ErrPlatformUnsupported
}

func (m *dummyMIDIClient) Send(msg []byte) error {
	return contracts.ErrPlatformUnsupported
}

func (m *dummyMIDIClient) Stop() error {
	m.logger.Warn("Stop called on dummy MIDI client")
	return nil
}

// CloseDriver does nothing: no driver is registered off Linux.
func CloseDriver() {}
