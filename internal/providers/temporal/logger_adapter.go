package temporal

import (
	"fmt"

	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// ZapLoggerAdapter routes Temporal SDK logs through the relay's zap logger
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

var (
	_ log.Logger     = (*ZapLoggerAdapter)(nil)
	_ log.WithLogger = (*ZapLoggerAdapter)(nil)
)

// NewZapLoggerAdapter creates a Temporal logger backed by logger
func NewZapLoggerAdapter(logger *zap.Logger) log.Logger {
	return &ZapLoggerAdapter{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (z *ZapLoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	z.logger.Debug(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Info(msg string, keyvals ...interface{}) {
	z.logger.Info(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keyvals ...interface{}) {
	z.logger.Warn(msg, convertKeyvalsToFields(keyvals...)...)
}

func (z *ZapLoggerAdapter) Error(msg string, keyvals ...interface{}) {
	z.logger.Error(msg, convertKeyvalsToFields(keyvals...)...)
}

// With returns a logger that always carries keyvals, used by the SDK for workflow and activity tags
func (z *ZapLoggerAdapter) With(keyvals ...interface{}) log.Logger {
	return &ZapLoggerAdapter{logger: z.logger.With(convertKeyvalsToFields(keyvals...)...)}
}

// convertKeyvalsToFields turns key1, val1, key2, val2, ... into zap fields.
// A trailing key without a value is dropped; non-string keys are formatted.
func convertKeyvalsToFields(keyvals ...interface{}) []zap.Field {
	if len(keyvals)%2 != 0 {
		keyvals = keyvals[:len(keyvals)-1]
	}

	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		if err, ok := keyvals[i+1].(error); ok {
			fields = append(fields, zap.NamedError(key, err))
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
