package main

import (
	"github.com/leandrodaf/midiscore/internal/logger"
	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/leandrodaf/midiscore/sdk/midi"
	"github.com/leandrodaf/midiscore/sdk/score"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
	bpm      uint16
	tpb      uint16

	log contracts.Logger
)

var rootCmd = &cobra.Command{
	Use:   "midiscore",
	Short: "Render the demo score to a MIDI file or a MIDI output",
	Long:  `midiscore compiles a small demo score into a single-track Standard MIDI File, or plays it on a MIDI output port.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := contracts.ParseLogLevel(logLevel)
		if err != nil {
			return err
		}
		log = logger.NewZapLogger()
		log.SetLevel(level)
		if logFile != "" {
			return log.SetDestination(contracts.FileLog, logFile)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		midi.CloseDrivers()
		_ = log.Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or fatal")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().Uint16Var(&bpm, "bpm", score.DefaultBPM, "playback tempo in beats per minute")
	rootCmd.PersistentFlags().Uint16Var(&tpb, "tpb", score.DefaultTicksPerBeat, "ticks per beat, a multiple of 4")
}

func timing() (score.Timing, error) {
	t := score.Timing{TicksPerBeat: tpb, BPM: bpm}
	return t, t.Validate()
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
