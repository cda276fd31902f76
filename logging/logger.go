package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger to provide structured logging with automatic
// credential redaction on error paths.
//
// It composes:
//   - FileWriter molecule (log file rotation via lumberjack)
//   - MultiCore molecule (tee output to console + file)
//   - RedactSensitiveData atom (API key redaction)
//
// Example:
//
//	logger := NewLogger(true, "photoset.log")
//	defer logger.Sync()
//
//	logger.Info("session started", zap.String("model", "gemini-2.5-flash-image"))
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a Logger for the given environment.
//
// When isDevelopment is true the console output is colored and debug-level;
// otherwise it is JSON and info-level. The file output is always JSON with
// rotation (50MB max, 3 backups, 30 days, compressed).
func NewLogger(isDevelopment bool, logFilePath string) *Logger {
	var level zapcore.Level
	if isDevelopment {
		level = zapcore.DebugLevel
	} else {
		level = zapcore.InfoLevel
	}

	core := NewMultiCore(level, logFilePath, isDevelopment)
	return &Logger{zap: zap.New(core)}
}

// NewLoggerWithCore creates a Logger over an explicit core.
// Tests use this to capture output in memory.
func NewLoggerWithCore(core zapcore.Core) *Logger {
	return &Logger{zap: zap.New(core)}
}

// Sync flushes any buffered log entries. Call via defer from main.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Debug logs a message at debug level with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Info logs a message at info level with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn logs a message at warn level with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error logs a message at error level. The message is passed through the
// sensitive-data filter since provider errors may echo credentials.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(RedactSensitiveData(msg), redactErrorFields(fields)...)
}

// Fatal logs a message at fatal level and exits the process.
func (l *Logger) Fatal(msg string, fields ...zap.Field) {
	l.zap.Fatal(RedactSensitiveData(msg), redactErrorFields(fields)...)
}

// With returns a child logger carrying the given fields on every entry.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...)}
}

// Named returns a child logger with the given component name appended.
func (l *Logger) Named(name string) *Logger {
	return &Logger{zap: l.zap.Named(name)}
}

// redactErrorFields rewrites zap error fields so that the rendered error
// string is redacted before it reaches any sink.
func redactErrorFields(fields []zap.Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		if f.Type == zapcore.ErrorType {
			if err, ok := f.Interface.(error); ok && err != nil {
				out[i] = zap.String(f.Key, RedactSensitiveData(err.Error()))
				continue
			}
		}
		out[i] = f
	}
	return out
}
