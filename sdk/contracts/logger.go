package contracts

import (
	"fmt"
	"strings"
	"time"
)

// LogLevel represents the severity level for logging. Levels are ordered so a
// logger set to a level drops everything below it.
type LogLevel int

const (
	// DebugLevel traces every event sent during playback.
	DebugLevel LogLevel = iota + 1
	// InfoLevel reports connections, exports and playback start and end.
	InfoLevel
	// WarnLevel reports recoverable oddities such as an empty device list.
	WarnLevel
	// ErrorLevel reports failed sends, writes and connections.
	ErrorLevel
	// FatalLevel logs and terminates the process.
	FatalLevel
)

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// ParseLogLevel maps a level name, as accepted on the command line, to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// LogDestination specifies where the log messages should be directed.
type LogDestination string

const (
	// ConsoleLog directs log messages to stderr.
	ConsoleLog LogDestination = "console"
	// FileLog directs log messages to a file.
	FileLog LogDestination = "file"
)

// Field is a typed key/value pair attached to a log entry. The value-less
// receiver returned by Logger.Field acts as a builder.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Time(key string, val time.Time) Field
	Duration(key string, val time.Duration) Field
	Int64(key string, val int64) Field
	Error(key string, val error) Field
	Uint64(key string, val uint64) Field
	Uint32(key string, val uint32) Field
	Uint8(key string, val uint8) Field
}

// Logger records messages at different levels.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
	SetDestination(dest LogDestination, filePath ...string) error
	Sync() error
}
