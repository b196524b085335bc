package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o operation failed" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{"nil error", nil, false},
		{"service unavailable status", errors.New("API returned 503"), true},
		{"unavailable text", errors.New("the service is currently unavailable"), true},
		{"timeout text", errors.New("request timeout"), true},
		{"timed out text", errors.New("dial tcp: i/o timed out"), true},
		{"connection refused", errors.New("connect: connection refused"), true},
		{"connection reset", errors.New("read: reset by peer"), true},
		{"net timeout error", fakeTimeoutError{}, true},
		{"wrapped transient", fmt.Errorf("generate: %w", errors.New("503 service error")), true},
		{"invalid api key", errors.New("invalid api key"), false},
		{"quota exceeded", errors.New("quota exceeded for model"), false},
		{"caller cancellation", context.Canceled, false},
		{"caller deadline", context.DeadlineExceeded, false},
		{"generic failure", errors.New("model not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTransient(tt.err); got != tt.transient {
				t.Errorf("isTransient(%v) = %v, want %v", tt.err, got, tt.transient)
			}
		})
	}
}
