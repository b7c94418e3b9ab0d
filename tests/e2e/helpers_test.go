//go:build e2e

package e2e_test

import (
	"io"
	"log/slog"
	"testing"
)

// testLogger returns a logger that discards output so test logs stay clean.
func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
