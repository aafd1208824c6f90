//go:build linux
// +build linux

package midirtmidi

import (
	"fmt"
	"sync"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // registers the RtMidi (ALSA) driver
)

// ClientMid sends MIDI through the gomidi RtMidi driver.
type ClientMid struct {
	logger contracts.Logger
	out    drivers.Out // Open output port, nil until SelectDevice succeeds.
	mu     sync.Mutex
}

// NewMIDIClient creates a MIDI output client backed by RtMidi.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("MIDI client created for Linux (rtmidi)")
	return &ClientMid{logger: options.Logger}, nil
}

// ListDevices returns the driver's output ports.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	ports := gomidi.GetOutPorts()
	if len(ports) == 0 {
		m.logger.Warn(contracts.ErrNoMIDIDevices.Error())
		return nil, contracts.ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(ports))
	for i, p := range ports {
		devices[i] = contracts.DeviceInfo{
			ID:         p.Number(),
			Name:       p.String(),
			EntityName: p.String(),
		}
	}
	return devices, nil
}

// SelectDevice opens the output port with the given number, closing any port
// opened before.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	out, err := gomidi.OutPort(deviceID)
	if err != nil {
		m.logger.Error(contracts.ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return fmt.Errorf("%w: %d: %v", contracts.ErrInvalidMIDIDevice, deviceID, err)
	}

	if m.out != nil {
		if err := m.out.Close(); err != nil {
			return fmt.Errorf("failed to close previous MIDI output: %w", err)
		}
		m.out = nil
	}

	if err := out.Open(); err != nil {
		m.logger.Error("Failed to open MIDI output port", m.logger.Field().Error("error", err))
		return fmt.Errorf("open MIDI output %q: %w", out.String(), err)
	}

	m.out = out
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", out.String()))
	return nil
}

// Send writes msg to the open port.
func (m *ClientMid) Send(msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.out == nil {
		return contracts.ErrNotConnected
	}
	return m.out.Send(msg)
}

// Stop closes the open port. The driver stays up for other clients until
// CloseDriver.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.out == nil {
		m.logger.Warn("No MIDI device is connected")
		return nil
	}

	err := m.out.Close()
	m.out = nil
	if err != nil {
		return fmt.Errorf("failed to close MIDI output: %w", err)
	}
	m.logger.Info("MIDI device closed")
	return nil
}

// CloseDriver shuts the RtMidi driver down. Call it once, when the process is
// done with every client.
func CloseDriver() {
	gomidi.CloseDriver()
}
