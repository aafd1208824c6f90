package main

import (
	"github.com/leandrodaf/midiscore/internal/sample"
	"github.com/leandrodaf/midiscore/sdk/score"
	"github.com/spf13/cobra"
)

var outPath string

func init() {
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "sample.mid", "file to write")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the demo score to a MIDI file",
	Long:  `Writes the demo score to a single-track Standard MIDI File. No tempo event is stored; players assume 120 bpm.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := timing()
		if err != nil {
			return err
		}
		return export(sample.Score(), t, outPath)
	},
}

func export(s *score.Score, t score.Timing, path string) error {
	n, err := s.Compile(t).Save(path, t)
	if err != nil {
		log.Error("Failed to write MIDI file", log.Field().String("path", path), log.Field().Error("error", err))
		return err
	}
	log.Info("MIDI file written",
		log.Field().String("path", path),
		log.Field().Int("notes", s.Len()),
		log.Field().Int64("bytes", n))
	return nil
}
