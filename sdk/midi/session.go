package midi

import (
	"context"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/leandrodaf/midiscore/sdk/score"
	"go.uber.org/multierr"
)

// WithConnection connects client to the destination deviceID, runs fn and
// closes the connection on every path out, including a failed fn. A close
// error is combined with fn's error.
//
// Returns:
//   - error: The connection error, or fn's error combined with any close error.
func WithConnection(client contracts.ClientMIDI, deviceID int, fn func(contracts.Sender) error) (err error) {
	if err := client.SelectDevice(deviceID); err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, client.Stop())
	}()
	return fn(client)
}

// PlayScore plays s on the destination deviceID in real time. It fails before
// any playback when the destination is missing.
func PlayScore(ctx context.Context, client contracts.ClientMIDI, deviceID int, s *score.Score, opts ...score.PlayerOption) error {
	player, err := score.NewPlayer(opts...)
	if err != nil {
		return err
	}
	track := s.Compile(player.Timing())
	return WithConnection(client, deviceID, func(out contracts.Sender) error {
		return player.Play(ctx, track, out)
	})
}
