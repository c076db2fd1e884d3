package stream

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// Every pipeline goroutine selects on the run context, which terminal
// operations cancel on exit, so nothing should outlive a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
