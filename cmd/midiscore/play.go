package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/leandrodaf/midiscore/internal/sample"
	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/leandrodaf/midiscore/sdk/midi"
	"github.com/leandrodaf/midiscore/sdk/score"
	"github.com/spf13/cobra"
)

var port int

func init() {
	playCmd.Flags().IntVarP(&port, "port", "p", 0, "output port ID as listed by the ports command")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Plays the demo score on a MIDI output port",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := timing()
		if err != nil {
			return err
		}
		client, err := midi.NewMIDIClient(contracts.WithLogger(log))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return play(ctx, client, port, sample.Score(), t)
	},
}

func play(ctx context.Context, client contracts.ClientMIDI, deviceID int, s *score.Score, t score.Timing) error {
	return midi.PlayScore(ctx, client, deviceID, s, score.WithTiming(t), score.WithLogger(log))
}
