package logging

import (
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default file writer configuration values
const (
	// DefaultMaxSizeMB is the maximum size in megabytes before rotation
	DefaultMaxSizeMB = 50

	// DefaultMaxBackups is the number of old log files to retain
	DefaultMaxBackups = 3

	// DefaultMaxAgeDays is the maximum number of days to retain old log files
	DefaultMaxAgeDays = 30

	// DefaultCompress enables gzip compression of rotated files
	DefaultCompress = true
)

// FileWriterConfig holds configuration for the file writer with rotation.
// All fields are optional - zero values will use defaults.
type FileWriterConfig struct {
	// MaxSizeMB is the maximum size of the log file before rotation
	MaxSizeMB int

	// MaxBackups is the maximum number of old log files to retain
	MaxBackups int

	// MaxAgeDays is the maximum number of days to retain old log files
	MaxAgeDays int

	// Compress determines if rotated log files are gzip-compressed
	Compress bool
}

// DefaultFileWriterConfig returns a FileWriterConfig with default values.
// This is a pure function with no side effects.
func DefaultFileWriterConfig() FileWriterConfig {
	return FileWriterConfig{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
		Compress:   DefaultCompress,
	}
}

// NewFileWriter creates a zapcore.WriteSyncer that writes to a file with
// automatic size-based rotation, using the default configuration.
//
// This molecule composes lumberjack.Logger into a zapcore.WriteSyncer.
func NewFileWriter(path string) zapcore.WriteSyncer {
	return NewFileWriterWithConfig(path, DefaultFileWriterConfig())
}

// NewFileWriterWithConfig creates a zapcore.WriteSyncer with custom rotation
// configuration. Zero-value fields fall back to defaults.
func NewFileWriterWithConfig(path string, config FileWriterConfig) zapcore.WriteSyncer {
	if config.MaxSizeMB <= 0 {
		config.MaxSizeMB = DefaultMaxSizeMB
	}
	if config.MaxBackups <= 0 {
		config.MaxBackups = DefaultMaxBackups
	}
	if config.MaxAgeDays <= 0 {
		config.MaxAgeDays = DefaultMaxAgeDays
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   config.Compress,
	})
}
