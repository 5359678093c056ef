package logger

import (
	"context"
	"testing"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))
	t.Cleanup(func() { Use(nil) })
	return logs
}

func TestWithRequestID(t *testing.T) {
	// Arrange
	ctx := WithRequestID(context.Background(), "req-1")

	// Act
	id := RequestID(ctx)

	// Assert
	assert.Equal(t, "req-1", id)
	assert.Empty(t, RequestID(context.Background()))
	assert.Empty(t, RequestID(nil))
}

func TestNewRequestContext(t *testing.T) {
	ctx := NewRequestContext()
	assert.NotEmpty(t, RequestID(ctx))
	assert.NotEqual(t, RequestID(ctx), RequestID(NewRequestContext()))
}

func TestCtxError_StructuredFields(t *testing.T) {
	// Arrange
	logs := observe(t)
	ctx := WithRequestID(context.Background(), "req-42")

	// Act
	CtxError(ctx, "Failed to save", LoggerInfo{
		ContextFunction: constant.CtxGenerate,
		Error: &CustomError{
			Code:    constant.ErrCodeSave,
			Message: "disk full",
			Type:    constant.ErrTypeGeneration,
		},
		Data: map[string]interface{}{
			constant.DataDomain: "example.com",
		},
	})

	// Assert
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "Failed to save", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "req-42", fields[constant.LogRequestIDKey])
	assert.Equal(t, constant.CtxGenerate, fields[constant.LogFunctionKey])
	assert.Equal(t, constant.ErrCodeSave, fields[constant.LogErrorCodeKey])
	assert.Equal(t, constant.ErrTypeGeneration, fields[constant.LogErrorTypeKey])
	assert.Equal(t, "disk full", fields[constant.LogErrorMessageKey])
	assert.Equal(t, "example.com", fields[constant.DataDomain])
}

func TestLogging_NoLoggerIsSilent(t *testing.T) {
	Use(nil)

	assert.NotPanics(t, func() {
		CtxDebug(context.Background(), "debug", LoggerInfo{})
		CtxInfo(context.Background(), "info", LoggerInfo{})
		CtxWarn(context.Background(), "warn", LoggerInfo{})
		CtxError(context.Background(), "error", LoggerInfo{})
		Info("info", LoggerInfo{})
		Error("error", LoggerInfo{})
		Close()
	})
}
