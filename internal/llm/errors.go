// Package llm wraps langchaingo models with provider selection, transient
// retry, and deployment-environment network options.
package llm

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrConfiguration indicates a missing or placeholder credential. It is
// surfaced at first LLM use, not at startup, so commands that never touch
// the model (schema, seed) work without a key.
var ErrConfiguration = errors.New("llm configuration error")

// transientPatterns are matched against lowercased error text when the
// transport gives us nothing more structured to classify with.
var transientPatterns = []string{
	"503",
	"timeout",
	"timed out",
	"connect",
	"unavailable",
	"reset by peer",
}

// isTransient classifies an LLM call failure as retryable: service
// unavailable, timeout, or connection failure. Anything else (bad
// credentials, quota, malformed request) propagates immediately.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Caller-imposed deadlines are not ours to retry.
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
