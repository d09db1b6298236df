package logger

import (
	"context"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// log is the global zap logger instance. It is a no-op logger until Initialize is called
	// so packages can log from tests without any setup.
	log = zap.NewNop()
	// sentryClient is the global sentry client
	sentryClient *sentry.Client
)

// Config holds logger configuration
type Config struct {
	Debug           bool
	SentryDSN       string
	SentryClient    *sentry.Client
	BreadcrumbLevel zapcore.Level
	Tags            map[string]string
}

// Initialize initializes the logger with sentry integration
func Initialize(cfg Config) error {
	zapConfig := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
		level = zapcore.DebugLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return err
	}

	if cfg.SentryDSN == "" {
		log = baseLogger
		return nil
	}

	sentryClient = cfg.SentryClient
	if sentryClient == nil {
		sentryClient, err = sentry.NewClient(sentry.ClientOptions{
			Dsn:   cfg.SentryDSN,
			Debug: cfg.Debug,
		})
		if err != nil {
			return err
		}
	}

	breadcrumbLevel := cfg.BreadcrumbLevel
	if breadcrumbLevel == zapcore.InvalidLevel {
		breadcrumbLevel = zapcore.InfoLevel
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbLevel,
		Tags:              cfg.Tags,
	}, zapsentry.NewSentryClientFromClient(sentryClient))
	if err != nil {
		return err
	}

	log = zapsentry.AttachCoreToLogger(core, baseLogger)
	return nil
}

// Flush flushes buffered log entries and pending sentry events
func Flush(timeout time.Duration) {
	_ = log.Sync()
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// FromContext returns a logger carrying the sentry scope of ctx
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	return log.With(zapsentry.Context(ctx))
}

// Default returns the global logger (without context scope)
func Default() *zap.Logger {
	return log
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

// InfoCtx logs an info message with context
func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

// Error logs an error message
func Error(err error, fields ...zap.Field) {
	log.Error(errorMessage(err), fields...)
}

// ErrorCtx logs an error message with context
func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	FromContext(ctx).Error(errorMessage(err), fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

// FatalCtx logs a fatal message with context and exits
func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

// WarnCtx logs a warning message with context
func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

// DebugCtx logs a debug message with context
func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

func errorMessage(err error) string {
	if err == nil {
		return "error occurred"
	}
	return err.Error()
}
