// Package tracetest records traced lines for tests.
package tracetest

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/Yokinman/trace"
)

// Recorder is a [trace.Tracer] that writes to a buffer, with capture on and colors off.
// It uses its own [trace.State].
//
// If the test fails, recorded output is logged at cleanup.
type Recorder struct {
	*trace.Tracer

	tb  testing.TB
	mu  sync.Mutex
	buf bytes.Buffer
}

// New returns a Recorder for the test.
func New(tb testing.TB) *Recorder {
	r := &Recorder{tb: tb}
	r.Tracer = trace.New().
		Writer(lockedWriter{r}).
		Capture(true).
		Colors(trace.ColorOff).
		State(trace.NewState()).
		Tracer()

	tb.Cleanup(func() {
		if tb.Failed() {
			tb.Logf("%s traced:\n%s", tb.Name(), r.String())
		}
	})
	return r
}

type lockedWriter struct {
	r *Recorder
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.r.mu.Lock()
	defer w.r.mu.Unlock()
	return w.r.buf.Write(p)
}

// String returns the output recorded since the last [Recorder.Clear].
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

// Lines returns the recorded output split into lines, without line terminators.
func (r *Recorder) Lines() []string {
	s := strings.TrimSuffix(r.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Clear discards recorded output. The remembered stack is kept.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Reset()
}

// ASSERTS

// Want reports whether the recorded output contains want, failing the test if not.
// The output is cleared.
func (r *Recorder) Want(want string) (found bool) {
	r.tb.Helper()
	defer r.Clear()

	got := r.String()
	if found = strings.Contains(got, want); !found {
		r.tb.Errorf("\nwant: %s\nin:   %s", want, got)
	}
	return
}

// WantBuffer reports whether the recorded output equals want, failing the test if not.
// The output is cleared.
func (r *Recorder) WantBuffer(want string) (found bool) {
	r.tb.Helper()
	defer r.Clear()

	got := r.String()
	if found = got == want; !found {
		r.tb.Errorf("\nwant:\n%s\ngot:\n%s", want, got)
	}
	return
}
