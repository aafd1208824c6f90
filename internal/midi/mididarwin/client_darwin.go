//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for CoreMIDI output issues.
var (
	ErrCreateOutputPort = errors.New("error creating output port")
	ErrListDestinations = errors.New("error listing MIDI destinations")
)

// ClientMid sends MIDI to a CoreMIDI destination on Darwin (macOS) systems.
type ClientMid struct {
	logger     contracts.Logger
	client     coremidi.Client       // CoreMIDI client instance.
	outputPort coremidi.OutputPort   // Output port created lazily on first connect.
	hasPort    bool                  // Whether outputPort has been created.
	dest       *coremidi.Destination // Selected destination, nil until SelectDevice succeeds.
	config     *contracts.CoreMIDIConfig
	mu         sync.Mutex
}

// NewMIDIClient creates the CoreMIDI client used for output.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI client successfully created",
		options.Logger.Field().String("clientName", options.CoreMIDIConfig.ClientName))

	return &ClientMid{
		logger: options.Logger,
		client: client,
		config: options.CoreMIDIConfig,
	}, nil
}

// ListDevices returns every CoreMIDI destination.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListDestinations, err)
	}
	if len(destinations) == 0 {
		m.logger.Warn(contracts.ErrNoMIDIDevices.Error())
		return nil, contracts.ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(destinations))
	for i, dest := range destinations {
		entity := dest.Entity()
		devices[i] = contracts.DeviceInfo{
			ID:           i,
			Name:         dest.Name(),
			EntityName:   entity.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice picks the destination with the given index. The destination
// list is read again so a device that vanished since ListDevices is reported.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrListDestinations, err)
	}
	if deviceID < 0 || deviceID >= len(destinations) {
		m.logger.Error(contracts.ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return fmt.Errorf("%w: %d", contracts.ErrInvalidMIDIDevice, deviceID)
	}

	if !m.hasPort {
		m.outputPort, err = coremidi.NewOutputPort(m.client, m.config.PortName)
		if err != nil {
			m.logger.Error(ErrCreateOutputPort.Error())
			return fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
		}
		m.hasPort = true
	}

	dest := destinations[deviceID]
	m.dest = &dest
	m.logger.Info("MIDI device selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", dest.Name()))
	return nil
}

// Send delivers msg to the selected destination immediately.
func (m *ClientMid) Send(msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dest == nil {
		return contracts.ErrNotConnected
	}
	packet := coremidi.NewPacket(msg, 0)
	return packet.Send(&m.outputPort, m.dest)
}

// Stop forgets the selected destination.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dest == nil {
		m.logger.Warn("No MIDI device is connected")
		return nil
	}
	m.dest = nil
	m.logger.Info("MIDI device closed")
	return nil
}
