package kubernetes

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// CommandExecutor abstracts cluster CLI execution for testing
type CommandExecutor interface {
	// Run executes the cluster CLI with args and captures its output
	Run(ctx context.Context, args []string) (stdout, stderr string, err error)
}

// CLIExecutor implements CommandExecutor by running a cluster CLI binary
type CLIExecutor struct {
	binary string
}

// NewCLIExecutor creates an executor for binary (kubectl or oc)
func NewCLIExecutor(binary string) CommandExecutor {
	return &CLIExecutor{binary: binary}
}

// Run executes the binary and returns whatever it printed, even on failure,
// so callers can decide how to interpret partial output
func (e *CLIExecutor) Run(ctx context.Context, args []string) (string, string, error) {
	//#nosec G204 -- binary is kubectl or oc, args are controlled
	cmd := exec.CommandContext(ctx, e.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return stdout.String(), stderr.String(), fmt.Errorf("%s failed: %w", e.binary, err)
	}

	return stdout.String(), stderr.String(), nil
}
