package envy

// SetupTestMocks configures common mock responses for testing
// This is in a regular file (not _test.go) so it can be imported by other packages' tests
func SetupTestMocks(mock *MockCommandRunner) {
	mock.DefaultResponse = ""

	// envycontrol presence check
	mock.SetResponse("which envycontrol", "/usr/bin/envycontrol")

	// Current mode query
	mock.SetResponse("envycontrol --query", "hybrid")

	// Privileged switch/reset (succeed silently)
	mock.SetResponse("yes | envycontrol", "")

	// GPU telemetry
	mock.SetResponse("nvidia-smi", "NVIDIA GeForce RTX 3060, 45, 512, 6144")
}

// SetDefaultTestRunner replaces the default runner with a mock and returns a cleanup function
func SetDefaultTestRunner() (*MockCommandRunner, func()) {
	original := DefaultRunner
	mock := NewMockCommandRunner()
	SetupTestMocks(mock)
	DefaultRunner = mock
	return mock, func() {
		DefaultRunner = original
	}
}

// IsTestMockActive returns true if the default runner is a mock (safety check)
func IsTestMockActive() bool {
	_, ok := DefaultRunner.(*MockCommandRunner)
	return ok
}
