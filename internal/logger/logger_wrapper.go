package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements contracts.Logger on top of zap.
type ZapLogger struct {
	mu     sync.RWMutex
	logger *zap.Logger
	level  zap.AtomicLevel
	file   *os.File
}

// NewZapLogger returns a console logger writing JSON entries to stderr at Info level.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &ZapLogger{
		logger: zap.New(newCore(zapcore.Lock(os.Stderr), level), zap.AddCaller(), zap.AddCallerSkip(2)),
		level:  level,
	}
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() contracts.Logger {
	return FromZap(zap.NewNop())
}

// FromZap wraps an existing zap logger. The wrapper's level filters on top of
// whatever the zap core already enables.
func FromZap(l *zap.Logger) contracts.Logger {
	return &ZapLogger{
		logger: l.WithOptions(zap.AddCallerSkip(2)),
		level:  zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

func newCore(ws zapcore.WriteSyncer, level zap.AtomicLevel) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg), ws, level)
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
}

// Field returns an empty field builder.
func (z *ZapLogger) Field() contracts.Field {
	return zapField{}
}

// SetLevel sets the lowest level that gets written.
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(toZapLevel(level))
}

// SetDestination switches output between stderr and a log file. The file is
// truncated on open.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) error {
	var ws zapcore.WriteSyncer
	var file *os.File
	switch dest {
	case contracts.ConsoleLog:
		ws = zapcore.Lock(os.Stderr)
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			return fmt.Errorf("file log destination needs a path")
		}
		f, err := os.OpenFile(filePath[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		file = f
		ws = zapcore.Lock(f)
	default:
		return fmt.Errorf("unknown log destination %q", dest)
	}

	z.mu.Lock()
	defer z.mu.Unlock()
	_ = z.logger.Sync()
	if z.file != nil {
		_ = z.file.Close()
	}
	z.file = file
	z.logger = zap.New(newCore(ws, z.level), zap.AddCaller(), zap.AddCallerSkip(2))
	return nil
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.logger.Sync()
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	if !z.level.Enabled(level) {
		return
	}
	z.mu.RLock()
	l := z.logger
	z.mu.RUnlock()

	ce := l.Check(level, msg)
	if ce == nil {
		return
	}
	ce.Write(toZapFields(fields)...)
}

func toZapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []contracts.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if zf, ok := f.(zapField); ok && zf.set {
			out = append(out, zf.f)
		}
	}
	return out
}

// zapField implements contracts.Field around a zap.Field.
type zapField struct {
	f   zap.Field
	set bool
}

func wrap(f zap.Field) contracts.Field { return zapField{f: f, set: true} }

func (zapField) Bool(key string, val bool) contracts.Field       { return wrap(zap.Bool(key, val)) }
func (zapField) Int(key string, val int) contracts.Field         { return wrap(zap.Int(key, val)) }
func (zapField) Float64(key string, val float64) contracts.Field { return wrap(zap.Float64(key, val)) }
func (zapField) String(key string, val string) contracts.Field   { return wrap(zap.String(key, val)) }
func (zapField) Time(key string, val time.Time) contracts.Field  { return wrap(zap.Time(key, val)) }
func (zapField) Int64(key string, val int64) contracts.Field     { return wrap(zap.Int64(key, val)) }
func (zapField) Uint64(key string, val uint64) contracts.Field   { return wrap(zap.Uint64(key, val)) }
func (zapField) Uint32(key string, val uint32) contracts.Field   { return wrap(zap.Uint32(key, val)) }
func (zapField) Uint8(key string, val uint8) contracts.Field     { return wrap(zap.Uint8(key, val)) }

func (zapField) Duration(key string, val time.Duration) contracts.Field {
	return wrap(zap.Duration(key, val))
}

func (zapField) Error(key string, val error) contracts.Field {
	return wrap(zap.NamedError(key, val))
}
