package midi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/leandrodaf/midiscore/sdk/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	devices   []contracts.DeviceInfo
	selected  int
	sent      [][]byte
	stopCalls int
	sendErr   error
	stopErr   error
}

func (f *fakeClient) ListDevices() ([]contracts.DeviceInfo, error) {
	if len(f.devices) == 0 {
		return nil, contracts.ErrNoMIDIDevices
	}
	return f.devices, nil
}

func (f *fakeClient) SelectDevice(deviceID int) error {
	if deviceID < 0 || deviceID >= len(f.devices) {
		return contracts.ErrInvalidMIDIDevice
	}
	f.selected = deviceID
	return nil
}

func (f *fakeClient) Send(msg []byte) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeClient) Stop() error {
	f.stopCalls++
	return f.stopErr
}

func newFake() *fakeClient {
	return &fakeClient{devices: []contracts.DeviceInfo{{ID: 0, Name: "synth"}, {ID: 1, Name: "drums"}}}
}

func noSleep() score.PlayerOption {
	return score.WithSleeper(func(time.Duration) {})
}

func TestWithConnectionClosesAfterSuccess(t *testing.T) {
	client := newFake()
	err := WithConnection(client, 1, func(out contracts.Sender) error {
		return out.Send([]byte{0x90, 60, 127})
	})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, client.selected)
	assert.Equal(1, client.stopCalls)
	assert.Len(client.sent, 1)
}

func TestWithConnectionClosesAfterFailure(t *testing.T) {
	client := newFake()
	boom := errors.New("boom")
	err := WithConnection(client, 0, func(contracts.Sender) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, client.stopCalls)
}

func TestWithConnectionJoinsCloseError(t *testing.T) {
	client := newFake()
	closeErr := errors.New("close failed")
	client.stopErr = closeErr
	boom := errors.New("boom")

	err := WithConnection(client, 0, func(contracts.Sender) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, closeErr)
}

func TestWithConnectionMissingDevice(t *testing.T) {
	client := newFake()
	called := false
	err := WithConnection(client, 5, func(contracts.Sender) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, contracts.ErrInvalidMIDIDevice)
	assert.False(t, called)
	assert.Zero(t, client.stopCalls)
}

func TestPlayScore(t *testing.T) {
	client := newFake()
	s := score.New().AddNote(60, 4, 0, 0).AddNote(64, 4, 0, 0)

	require.NoError(t, PlayScore(context.Background(), client, 0, s, noSleep()))

	assert.Equal(t, [][]byte{
		{0x90, 60, 127},
		{0x90, 64, 127},
		{0x80, 60, 0},
		{0x80, 64, 0},
	}, client.sent)
	assert.Equal(t, 1, client.stopCalls)
}

func TestPlayScoreSendFailureStillCloses(t *testing.T) {
	client := newFake()
	client.sendErr = errors.New("port vanished")

	err := PlayScore(context.Background(), client, 0, score.New().AddNote(60, 4, 0, 0), noSleep())

	assert.ErrorIs(t, err, score.ErrSend)
	assert.Equal(t, 1, client.stopCalls)
}

func TestPlayScoreBadTimingFailsBeforeConnecting(t *testing.T) {
	client := newFake()
	err := PlayScore(context.Background(), client, 0, score.New(), score.WithTiming(score.Timing{TicksPerBeat: 10, BPM: 120}))

	assert.ErrorIs(t, err, score.ErrInexactResolution)
	assert.Zero(t, client.stopCalls)
}
