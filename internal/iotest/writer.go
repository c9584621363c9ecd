// Package iotest provides IO helpers for tests.
package iotest

import (
	"io"
	"strings"
	"testing"

	"go.abhg.dev/snippet/internal/linebuf"
)

// Writer builds an io.Writer that writes to the given testing.TB.
// Each line of a write becomes a separate log entry.
func Writer(t testing.TB) io.Writer {
	return &writer{t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	s := strings.TrimSuffix(string(b), "\n")
	for _, line := range linebuf.Split(s) {
		w.t.Logf("%s", line)
	}
	return len(b), nil
}
