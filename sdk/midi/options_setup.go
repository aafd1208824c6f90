package midi

import (
	"github.com/leandrodaf/midiscore/internal/logger"
	"github.com/leandrodaf/midiscore/sdk/contracts"
)

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify ClientOptions.
//
// Returns:
//   - contracts.ClientOptions: A structure containing the finalized client options with defaults applied.
//   - error: An error if the log file could not be opened.
func applyDefaultOptions(opts ...contracts.Option) (contracts.ClientOptions, error) {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{}
	}
	if options.CoreMIDIConfig.ClientName == "" {
		options.CoreMIDIConfig.ClientName = "midiscore"
	}
	if options.CoreMIDIConfig.PortName == "" {
		options.CoreMIDIConfig.PortName = "midiscore out"
	}

	options.Logger.SetLevel(options.LogLevel)
	if options.LogFilePath != "" {
		if err := options.Logger.SetDestination(contracts.FileLog, options.LogFilePath); err != nil {
			return *options, err
		}
	}
	return *options, nil
}
