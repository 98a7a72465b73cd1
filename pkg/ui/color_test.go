package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()

	previousOutput := Output
	previousNoColor := color.NoColor
	t.Cleanup(func() {
		Output = previousOutput
		color.NoColor = previousNoColor
	})

	var buf bytes.Buffer
	Output = &buf
	color.NoColor = true

	fn()
	return buf.String()
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"success", func() { Success("wrote %s", ".env") }, "✓ wrote .env\n"},
		{"warning", func() { Warning("%d unresolved", 2) }, "⚠️  2 unresolved\n"},
		{"progress", func() { Progress("resolving") }, "⏳ resolving\n"},
		{"header", func() { Header("Variables") }, "Variables\n"},
		{"plain", func() { Plain("  - %s", "FOO") }, "  - FOO\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capture(t, tt.fn))
		})
	}
}

func TestError(t *testing.T) {
	previousErrOutput := ErrOutput
	previousNoColor := color.NoColor
	t.Cleanup(func() {
		ErrOutput = previousErrOutput
		color.NoColor = previousNoColor
	})

	var errBuf bytes.Buffer
	ErrOutput = &errBuf
	color.NoColor = true

	stdout := capture(t, func() { Error("Error: %v", "boom") })

	assert.Empty(t, stdout)
	assert.Equal(t, "✗ Error: boom\n", errBuf.String())
}
