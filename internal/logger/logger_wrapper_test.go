package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leandrodaf/midiscore/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (contracts.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestFieldsAreTyped(t *testing.T) {
	log, logs := observed()
	log.Info("event",
		log.Field().Int("n", 3),
		log.Field().String("name", "synth"),
		log.Field().Bool("ok", true),
		log.Field().Uint8("key", 60),
		log.Field().Duration("wait", 500*time.Millisecond),
		log.Field().Error("error", errors.New("boom")))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()

	assert := assert.New(t)
	assert.Equal(int64(3), fields["n"])
	assert.Equal("synth", fields["name"])
	assert.Equal(true, fields["ok"])
	assert.Equal(uint8(60), fields["key"])
	assert.Equal(500*time.Millisecond, fields["wait"])
	assert.Equal("boom", fields["error"])
}

func TestSetLevelFilters(t *testing.T) {
	log, logs := observed()
	log.SetLevel(contracts.WarnLevel)

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")

	assert := assert.New(t)
	assert.Equal(2, logs.Len())
	assert.Equal(zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestForeignFieldsAreIgnored(t *testing.T) {
	log, logs := observed()
	var nilField contracts.Field
	log.Info("msg", log.Field(), nilField)

	require.Equal(t, 1, logs.Len())
	assert.Empty(t, logs.All()[0].Context)
}

func TestSetDestinationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	log := NewZapLogger()
	require.NoError(t, log.SetDestination(contracts.FileLog, path))

	log.Info("written", log.Field().Int("n", 1))
	log.Debug("dropped")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Contains(string(data), `"msg":"written"`)
	assert.Contains(string(data), `"n":1`)
	assert.NotContains(string(data), "dropped")
}

func TestSetDestinationErrors(t *testing.T) {
	log := NewZapLogger()

	assert := assert.New(t)
	assert.Error(log.SetDestination(contracts.FileLog))
	assert.Error(log.SetDestination("syslog"))
	assert.Error(log.SetDestination(contracts.FileLog, filepath.Join(t.TempDir(), "x", "y.log")))
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()

	assert.NotPanics(t, func() {
		log.Info("nothing", log.Field().Int("n", 1))
		log.SetLevel(contracts.ErrorLevel)
	})
}
