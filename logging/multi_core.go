package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// NewMultiCore creates a zapcore.Core that tees output to both console and a
// rotating log file. The file output always uses JSON encoding; the console
// output is human-readable and colored in development mode, JSON otherwise.
//
// Console output goes to stderr so that operator prompts and progress on
// stdout stay readable when logs and prompts interleave.
func NewMultiCore(level zapcore.Level, filePath string, isDev bool) zapcore.Core {
	fileWriter := NewFileWriter(filePath)
	return NewMultiCoreWithWriters(level, zapcore.AddSync(os.Stderr), fileWriter, isDev)
}

// NewMultiCoreWithWriters creates a tee core over the provided writers.
// This variant exists for tests that capture log output in buffers.
func NewMultiCoreWithWriters(level zapcore.Level, consoleWriter, fileWriter zapcore.WriteSyncer, isDev bool) zapcore.Core {
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		fileWriter,
		level,
	)

	var consoleEncoder zapcore.Encoder
	if isDev {
		consoleEncoder = zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(NewEncoderConfig())
	}

	consoleCore := zapcore.NewCore(
		consoleEncoder,
		consoleWriter,
		level,
	)

	return zapcore.NewTee(consoleCore, fileCore)
}
