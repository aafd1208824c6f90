package main

import (
	"context"
	"fmt"

	"github.com/leandrodaf/midiscore/internal/logger"
	"github.com/leandrodaf/midiscore/internal/sample"
	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/leandrodaf/midiscore/sdk/midi"
	"github.com/leandrodaf/midiscore/sdk/score"
)

func main() {
	log := logger.NewZapLogger()
	defer log.Sync()
	defer midi.CloseDrivers()

	s := sample.Score()
	if err := s.Save("sample.mid"); err != nil {
		log.Fatal("Failed to save file", log.Field().Error("error", err))
	}
	log.Info("Saved sample.mid", log.Field().Int("notes", s.Len()))

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI client", log.Field().Error("error", err))
		return
	}

	devices, err := client.ListDevices()
	if err != nil || len(devices) == 0 {
		log.Error("No MIDI devices found or error listing devices", log.Field().Error("error", err))
		return
	}
	fmt.Println("Available MIDI outputs:", devices)

	if err := midi.PlayScore(context.Background(), client, devices[0].ID, s, score.WithLogger(log)); err != nil {
		log.Fatal("Playback failed", log.Field().Error("error", err))
	}
}
