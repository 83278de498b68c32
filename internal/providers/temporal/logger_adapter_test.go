package temporal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestKeyvalFields(t *testing.T) {
	fields := keyvalFields([]interface{}{"WorkflowID", "close-funding-round-3", 42, "dropped", "Error", errors.New("boom"), "dangling"})
	require.Len(t, fields, 2)
	assert.Equal(t, "WorkflowID", fields[0].Key)
	assert.Equal(t, "Error", fields[1].Key)
	assert.Equal(t, zapcore.ErrorType, fields[1].Type)
}

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerAdapter(zap.New(core))

	l.Info("Started Worker", "TaskQueue", "power-ledger-worker")
	l.(log.WithLogger).With("RunID", "run-1").Warn("Activity retried", "Attempt", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "temporal", entries[0].LoggerName)
	assert.Equal(t, "power-ledger-worker", entries[0].ContextMap()["TaskQueue"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "run-1", entries[1].ContextMap()["RunID"])
	assert.EqualValues(t, 2, entries[1].ContextMap()["Attempt"])
}
