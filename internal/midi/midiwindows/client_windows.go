//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	"golang.org/x/sys/windows"
)

// HMIDIOUT is a winmm output device handle.
type HMIDIOUT windows.Handle

// CALLBACK_NULL opens the device without a completion callback.
const CALLBACK_NULL = 0x00000000

// ErrMIDIOutCall wraps a non-zero MMRESULT returned by winmm.
var ErrMIDIOutCall = errors.New("winmm midiOut call failed")

// Struct representing MIDI output device capabilities (MIDIOUTCAPSW)
type midiOutCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	wTechnology    uint16
	wVoices        uint16
	wNotes         uint16
	wChannelMask   uint16
	dwSupport      uint32
}

// ClientMid manages MIDI output on Windows
type ClientMid struct {
	logger contracts.Logger
	handle HMIDIOUT
	open   bool
	mu     sync.Mutex
}

// Load the winmm.dll library and required functions
var (
	winmm                 = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutGetNumDevs = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutGetDevCaps = winmm.NewProc("midiOutGetDevCapsW")
	procMidiOutOpen       = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg   = winmm.NewProc("midiOutShortMsg")
	procMidiOutReset      = winmm.NewProc("midiOutReset")
	procMidiOutClose      = winmm.NewProc("midiOutClose")
)

// NewMIDIClient creates a MIDI output client for Windows
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("MIDI client created for Windows")

	return &ClientMid{
		logger: options.Logger,
	}, nil
}

// ListDevices lists the available MIDI output devices
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiOutGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		m.logger.Warn(contracts.ErrNoMIDIDevices.Error())
		return nil, contracts.ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, 0, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiOutCaps
		r1, _, _ := procMidiOutGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn("Failed to get information for MIDI output device", m.logger.Field().Int("deviceID", int(i)))
			continue
		}
		deviceName := windows.UTF16ToString(caps.szPname[:])
		devices = append(devices, contracts.DeviceInfo{
			ID:           int(i),
			Name:         deviceName,
			EntityName:   deviceName,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		})
	}
	return devices, nil
}

// SelectDevice opens the output device with the given ID, closing any device
// opened before.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r0, _, _ := procMidiOutGetNumDevs.Call()
	if deviceID < 0 || deviceID >= int(uint32(r0)) {
		m.logger.Error(contracts.ErrInvalidMIDIDevice.Error(), m.logger.Field().Int("deviceID", deviceID))
		return fmt.Errorf("%w: %d", contracts.ErrInvalidMIDIDevice, deviceID)
	}

	if m.open {
		if err := m.closeDevice(); err != nil {
			return fmt.Errorf("failed to close previous MIDI output: %w", err)
		}
	}

	r1, _, _ := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		uintptr(deviceID),
		0,
		0,
		CALLBACK_NULL,
	)
	if r1 != 0 {
		m.logger.Error("Failed to open MIDI output device", m.logger.Field().Int("deviceID", deviceID))
		return fmt.Errorf("%w: midiOutOpen(%d) returned %d", ErrMIDIOutCall, deviceID, r1)
	}

	m.open = true
	m.logger.Info("MIDI device connected", m.logger.Field().Int("deviceID", deviceID))
	return nil
}

// Send writes a short (at most 3 byte) message to the open device.
func (m *ClientMid) Send(msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return contracts.ErrNotConnected
	}
	packed, err := packShortMessage(msg)
	if err != nil {
		return err
	}
	r1, _, _ := procMidiOutShortMsg.Call(uintptr(m.handle), uintptr(packed))
	if r1 != 0 {
		return fmt.Errorf("%w: midiOutShortMsg returned %d", ErrMIDIOutCall, r1)
	}
	return nil
}

// Stop silences and closes the open device
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		m.logger.Warn("No MIDI device is connected")
		return nil
	}

	if err := m.closeDevice(); err != nil {
		return fmt.Errorf("failed to close MIDI output: %w", err)
	}
	m.logger.Info("MIDI device closed")
	return nil
}

// closeDevice resets and closes the handle
func (m *ClientMid) closeDevice() error {
	if m.handle == 0 {
		return fmt.Errorf("invalid MIDI device handle")
	}

	procMidiOutReset.Call(uintptr(m.handle))

	r1, _, _ := procMidiOutClose.Call(uintptr(m.handle))
	if r1 != 0 {
		m.logger.Error("Failed to close MIDI device")
		return fmt.Errorf("%w: midiOutClose returned %d", ErrMIDIOutCall, r1)
	}

	m.open = false
	m.handle = 0
	return nil
}
