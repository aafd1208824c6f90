package score

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leandrodaf/midiscore/internal/logger"
	"github.com/leandrodaf/midiscore/sdk/contracts"
)

// ErrSend wraps a send rejected by the output device. Playback stops at the
// first rejected send.
var ErrSend = errors.New("send midi message")

// Player walks a compiled track in real time and pushes each note event to a
// contracts.Sender.
type Player struct {
	t     Timing
	log   contracts.Logger
	sleep func(time.Duration)
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithTiming sets the resolution and tempo used for pacing.
func WithTiming(t Timing) PlayerOption {
	return func(p *Player) {
		p.t = t
	}
}

// WithLogger sets the logger used for playback progress.
func WithLogger(l contracts.Logger) PlayerOption {
	return func(p *Player) {
		p.log = l
	}
}

// WithSleeper replaces time.Sleep, mostly for tests.
func WithSleeper(sleep func(time.Duration)) PlayerOption {
	return func(p *Player) {
		p.sleep = sleep
	}
}

// NewPlayer returns a player at DefaultTiming that sleeps with time.Sleep and
// logs nothing unless configured otherwise.
func NewPlayer(opts ...PlayerOption) (*Player, error) {
	p := &Player{t: DefaultTiming}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.NewNopLogger()
	}
	if p.sleep == nil {
		p.sleep = time.Sleep
	}
	if err := p.t.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Timing returns the resolution and tempo the player paces with.
func (p *Player) Timing() Timing {
	return p.t
}

// Play blocks until the whole track has been sent. Before every event it
// waits for the event's delta, then sends the note message. The end of track
// event produces no bytes. A cancelled ctx stops playback between events.
func (p *Player) Play(ctx context.Context, tr Track, sink contracts.Sender) error {
	p.log.Info("Playback started",
		p.log.Field().Int("events", len(tr)),
		p.log.Field().Duration("length", tr.Duration(p.t)),
		p.log.Field().Int("bpm", int(p.t.BPM)))

	for i, ev := range tr {
		if err := ctx.Err(); err != nil {
			p.log.Warn("Playback cancelled", p.log.Field().Int("event", i))
			return err
		}
		p.sleep(p.t.Delay(ev.Delta))

		msg := ev.Message()
		if msg == nil {
			continue
		}
		if err := sink.Send(msg); err != nil {
			p.log.Error("Failed to send MIDI message",
				p.log.Field().Int("event", i),
				p.log.Field().Error("error", err))
			return fmt.Errorf("%w: event %d (%s): %w", ErrSend, i, ev, err)
		}
		p.log.Debug("MIDI message sent",
			p.log.Field().String("kind", ev.Kind.String()),
			p.log.Field().Uint8("channel", ev.Channel),
			p.log.Field().Uint8("key", ev.Key),
			p.log.Field().Uint32("delta", ev.Delta))
	}

	p.log.Info("Playback finished")
	return nil
}

// Play compiles the score with the player's timing and plays it to sink.
func (s *Score) Play(ctx context.Context, sink contracts.Sender, opts ...PlayerOption) error {
	p, err := NewPlayer(opts...)
	if err != nil {
		return err
	}
	return p.Play(ctx, s.Compile(p.t), sink)
}
