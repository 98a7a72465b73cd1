// Package ui prints user-facing status lines.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

// Output is where status lines are written. Commands point it at cmd.OutOrStdout().
var Output io.Writer = os.Stdout

// ErrOutput is where errors are written.
var ErrOutput io.Writer = os.Stderr

// Success prints a green success message with checkmark.
func Success(format string, args ...any) {
	_, _ = green.Fprintf(Output, "✓ "+format+"\n", args...)
}

// Warning prints a yellow warning message.
func Warning(format string, args ...any) {
	_, _ = yellow.Fprintf(Output, "⚠️  "+format+"\n", args...)
}

// Progress prints an in-flight step.
func Progress(format string, args ...any) {
	_, _ = cyan.Fprintf(Output, "⏳ "+format+"\n", args...)
}

// Error prints a red error message to ErrOutput.
func Error(format string, args ...any) {
	_, _ = red.Fprintf(ErrOutput, "✗ "+format+"\n", args...)
}

// Header prints a bold header.
func Header(format string, args ...any) {
	_, _ = bold.Fprintf(Output, format+"\n", args...)
}

// Plain prints without decoration.
func Plain(format string, args ...any) {
	_, _ = fmt.Fprintf(Output, format+"\n", args...)
}
