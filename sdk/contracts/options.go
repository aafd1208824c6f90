package contracts

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
	PortName   string // Name of the output port created on the client.
}

// ClientOptions defines the configuration options for the MIDI output client.
type ClientOptions struct {
	Logger         Logger          // Logger for logging events and errors.
	LogLevel       LogLevel        // Level of logging to use.
	LogFilePath    string          // File path for logging if file logging is enabled.
	CoreMIDIConfig *CoreMIDIConfig // Configuration specific to CoreMIDI.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile sends the client's log output to the given file.
func WithLogFile(path string) Option {
	return func(opts *ClientOptions) {
		opts.LogFilePath = path
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the MIDI client.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}
