package envy

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// CommandRunner interface for executing external commands
// This allows mocking in tests
type CommandRunner interface {
	Run(name string, args ...string) (string, error)
}

// RealCommandRunner spawns actual processes
type RealCommandRunner struct{}

// Run executes the command and returns its trimmed stdout. A spawn
// failure or non-zero exit is returned as an error whose message carries
// the captured stderr when there is any.
func (r *RealCommandRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return strings.TrimSpace(stdout.String()), errors.New(msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// DefaultRunner is the package-level command runner
// Tests can replace this with a mock
var DefaultRunner CommandRunner = &RealCommandRunner{}

// MockCommandRunner for testing
type MockCommandRunner struct {
	Responses       map[string]string
	Errors          map[string]error
	Calls           []string
	DefaultResponse string
}

// NewMockCommandRunner creates a new mock runner
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
		Calls:     []string{},
	}
}

// Run returns mocked responses, matching on the full command line
func (m *MockCommandRunner) Run(name string, args ...string) (string, error) {
	command := strings.Join(append([]string{name}, args...), " ")
	m.Calls = append(m.Calls, command)

	// Check for exact error match first
	if err, ok := m.Errors[command]; ok {
		return "", err
	}

	// Check for exact response match
	if resp, ok := m.Responses[command]; ok {
		return resp, nil
	}

	// Check for partial matches in errors
	for pattern, err := range m.Errors {
		if strings.Contains(command, pattern) {
			return "", err
		}
	}

	// Check for partial matches in responses
	for pattern, resp := range m.Responses {
		if strings.Contains(command, pattern) {
			return resp, nil
		}
	}

	return m.DefaultResponse, nil
}

// SetResponse sets a mock response for a command pattern
func (m *MockCommandRunner) SetResponse(pattern, response string) {
	m.Responses[pattern] = response
}

// SetError sets a mock error for a command pattern
func (m *MockCommandRunner) SetError(pattern string, err error) {
	m.Errors[pattern] = err
}

// Reset clears all mock data
func (m *MockCommandRunner) Reset() {
	m.Responses = make(map[string]string)
	m.Errors = make(map[string]error)
	m.Calls = []string{}
}
