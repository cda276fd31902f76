// Package console handles all interaction with the human operator: the model
// selection menu, per-prompt yes/no gates, and colored progress output.
//
// Decisions go through the Operator interface so end-to-end tests can script
// answers instead of supplying real keystrokes.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Bizzaro10/nano-banana-script/core"
)

// Operator is the decision surface of the interactive session.
type Operator interface {
	// SelectModel shows the model menu and resolves the operator's answer.
	// Unrecognized input resolves to the default model.
	SelectModel(catalog []core.ModelChoice) core.ModelChoice

	// ConfirmPoses asks whether pose variants should be generated for the
	// named prompt. Only an exact "y" (case-insensitive, trimmed) confirms;
	// notably "yes" does not.
	ConfirmPoses(promptName string) bool
}

// Console is the real Operator reading from an input stream and writing to an
// output stream, usually stdin/stdout.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Console bound to stdin and stdout.
func New() *Console {
	return NewWithStreams(os.Stdin, os.Stdout)
}

// NewWithStreams returns a Console over explicit streams. Tests use this with
// scripted input and a capture buffer.
func NewWithStreams(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// readLine returns the next input line, or "" on EOF or read error.
// An unreadable answer behaves like an empty one: defaults apply.
func (c *Console) readLine() string {
	if c.in.Scan() {
		return c.in.Text()
	}
	return ""
}

// SelectModel implements Operator.
func (c *Console) SelectModel(catalog []core.ModelChoice) core.ModelChoice {
	Headerf(c.out, "\n--- 🤖 MODEL SELECTION ---\n")
	for _, choice := range catalog {
		fmt.Fprintf(c.out, "%s: %s\n", choice.Key, choice.Label)
	}
	fmt.Fprint(c.out, "Select model (1 or 2): ")

	selected := core.ResolveModel(c.readLine())
	Successf(c.out, "✅ Using model: %s\n\n", selected.ID)
	return selected
}

// ConfirmPoses implements Operator.
func (c *Console) ConfirmPoses(promptName string) bool {
	fmt.Fprintf(c.out, "   ❓ Generate poses for '%s'? (y/n): ", promptName)
	answer := strings.ToLower(strings.TrimSpace(c.readLine()))
	return answer == "y"
}
