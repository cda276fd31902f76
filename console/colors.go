package console

import (
	"io"

	"github.com/fatih/color"
)

// Shared color styles for operator-facing output. The color library degrades
// to plain text when stdout is not a terminal.
var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Headerf prints a bold section header.
func Headerf(w io.Writer, format string, a ...interface{}) {
	headerColor.Fprintf(w, format, a...)
}

// Successf prints a success message in green.
func Successf(w io.Writer, format string, a ...interface{}) {
	successColor.Fprintf(w, format, a...)
}

// Warnf prints a warning message in yellow.
func Warnf(w io.Writer, format string, a ...interface{}) {
	warnColor.Fprintf(w, format, a...)
}

// Errorf prints an error message in red.
func Errorf(w io.Writer, format string, a ...interface{}) {
	errorColor.Fprintf(w, format, a...)
}
