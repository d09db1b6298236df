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

func TestConvertKeyvalsToFields(t *testing.T) {
	fields := convertKeyvalsToFields("WorkflowID", "identity-provisioning-1", 7, "attempt", "dangling")
	require.Len(t, fields, 2)
	assert.Equal(t, "WorkflowID", fields[0].Key)
	assert.Equal(t, "7", fields[1].Key)
}

func TestConvertKeyvalsToFields_Error(t *testing.T) {
	fields := convertKeyvalsToFields("Error", errors.New("boom"))
	require.Len(t, fields, 1)
	assert.Equal(t, zapcore.ErrorType, fields[0].Type)
}

func TestZapLoggerAdapter_With(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := NewZapLoggerAdapter(zap.New(core))

	withLogger, ok := adapter.(log.WithLogger)
	require.True(t, ok)

	withLogger.With("Namespace", "relay").Warn("activity retry", "Attempt", 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "activity retry", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "relay", ctx["Namespace"])
	assert.EqualValues(t, 2, ctx["Attempt"])
}
