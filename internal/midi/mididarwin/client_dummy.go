//go:build !darwin
// +build !darwin

package mididarwin

import (
	"github.com/leandrodaf/midiscore/sdk/contracts"
)

type DummyMIDIClient struct {
	logger contracts.Logger
}

func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("Using dummy MIDI client for non-macOS system")
	return &DummyMIDIClient{
		logger: options.Logger,
	}, nil
}

func (m *DummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	m.logger.Warn("ListDevices called on dummy MIDI client")
	return nil, contracts.ErrPlatformUnsupported
}

func (m *DummyMIDIClient) SelectDevice(deviceID int) error {
	m.logger.Warn("SelectDevice called on dummy MIDI client")
	return contracts.ErrPlatformUnsupported
}

func (m *DummyMIDIClient) Send(msg []byte) error {
	return contracts.ErrPlatformUnsupported
}

func (m *DummyMIDIClient) Stop() error {
	m.logger.Warn("Stop called on dummy MIDI client")
	return nil
}
