package main

import (
	"fmt"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/leandrodaf/midiscore/sdk/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists MIDI output ports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := midi.NewMIDIClient(contracts.WithLogger(log))
		if err != nil {
			return err
		}
		devices, err := client.ListDevices()
		if err != nil {
			return err
		}
		for _, d := range devices {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", d.ID, d)
		}
		return nil
	},
}
