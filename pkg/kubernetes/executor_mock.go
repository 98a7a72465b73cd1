package kubernetes

import (
	"context"
	"strings"
)

// MockExecutor is a mock implementation of CommandExecutor for testing
type MockExecutor struct {
	Responses map[string]MockResponse
	Commands  [][]string
}

// MockResponse represents a mock response for a command
type MockResponse struct {
	Error  error
	Stdout string
	Stderr string
}

// NewMockExecutor creates a new MockExecutor
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  [][]string{},
		Responses: make(map[string]MockResponse),
	}
}

// Run records the command and returns a pre-configured response.
// The longest matching prefix wins so overlapping prefixes stay deterministic.
func (m *MockExecutor) Run(ctx context.Context, args []string) (string, string, error) {
	m.Commands = append(m.Commands, args)

	cmdStr := strings.Join(args, " ")
	best := ""
	var response *MockResponse
	for prefix, r := range m.Responses {
		if strings.HasPrefix(cmdStr, prefix) && (response == nil || len(prefix) > len(best)) {
			best = prefix
			response = &r
		}
	}

	if response != nil {
		return response.Stdout, response.Stderr, response.Error
	}

	// Default success
	return "", "", nil
}

// SetResponse configures a mock response for commands starting with prefix
func (m *MockExecutor) SetResponse(prefix, stdout, stderr string, err error) {
	m.Responses[prefix] = MockResponse{
		Stdout: stdout,
		Stderr: stderr,
		Error:  err,
	}
}

// GetCommands returns all executed commands (for assertions)
func (m *MockExecutor) GetCommands() [][]string {
	return m.Commands
}
