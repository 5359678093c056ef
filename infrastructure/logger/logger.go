package logger

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/prasetyowira/qrgen/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

type requestIDKey struct{}

// LoggerInfo contains structured logging information
type LoggerInfo struct {
	ContextFunction string
	Error           *CustomError
	Data            map[string]interface{}
}

// CustomError represents a structured error for logging
type CustomError struct {
	Code    string
	Message string
	Type    string
}

// Initialize sets up the logger. Production logs JSON at info level,
// everything else logs to the console at debug level.
func Initialize(isProduction bool) {
	// Create encoder config
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        constant.LogTimeKey,
		LevelKey:       constant.LogLevelKey,
		NameKey:        constant.LogNameKey,
		CallerKey:      constant.LogCallerKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     constant.LogMessageKey,
		StacktraceKey:  constant.LogStacktraceKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// Create config, development by default
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:      true,
		Encoding:         constant.LogEncodingConsole,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{constant.LogOutputStdout},
		ErrorOutputPaths: []string{constant.LogOutputStderr},
	}
	if isProduction {
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		config.Development = false
		config.Encoding = constant.LogEncodingJSON
		config.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	}

	// Build the logger
	built, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Fall back to stderr and exit
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	// Not syncing here; the application calls Close() on shutdown
	logger = built
}

// Use replaces the package logger, mainly for tests that observe log output.
// Passing nil silences logging.
func Use(l *zap.Logger) {
	logger = l
}

// Close ensures logger syncs before shutdown
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// createFields creates zap fields with proper structure
func createFields(ctx context.Context, info LoggerInfo) []zap.Field {
	fields := make([]zap.Field, 0, len(info.Data)+5)

	// Add request ID if available
	if requestID := RequestID(ctx); requestID != "" {
		fields = append(fields, zap.String(constant.LogRequestIDKey, requestID))
	}

	// Add context/function info
	if info.ContextFunction != "" {
		fields = append(fields, zap.String(constant.LogFunctionKey, info.ContextFunction))
	}

	// Add error details if available
	if info.Error != nil {
		fields = append(fields,
			zap.String(constant.LogErrorCodeKey, info.Error.Code),
			zap.String(constant.LogErrorTypeKey, info.Error.Type),
			zap.String(constant.LogErrorMessageKey, info.Error.Message),
		)
	}

	// Add additional data
	for k, v := range info.Data {
		fields = append(fields, zap.Any(k, v))
	}

	return fields
}

// Info logs an info message
func Info(msg string, info LoggerInfo) {
	CtxInfo(context.Background(), msg, info)
}

// Error logs an error message
func Error(msg string, info LoggerInfo) {
	CtxError(context.Background(), msg, info)
}

// CtxDebug logs a debug message with context
func CtxDebug(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Debug(msg, createFields(ctx, info)...)
}

// CtxInfo logs an info message with context
func CtxInfo(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Info(msg, createFields(ctx, info)...)
}

// CtxWarn logs a warning message with context
func CtxWarn(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Warn(msg, createFields(ctx, info)...)
}

// CtxError logs an error message with context
func CtxError(ctx context.Context, msg string, info LoggerInfo) {
	if logger == nil {
		return
	}
	logger.Error(msg, createFields(ctx, info)...)
}

// NewRequestContext creates a context carrying a fresh request ID, used for
// work that does not originate from an HTTP request.
func NewRequestContext() context.Context {
	return WithRequestID(context.Background(), uuid.NewString())
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID stored in ctx, or "" if there is none.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}
