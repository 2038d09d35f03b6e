package trace

import (
	"fmt"
	"strings"
)

// Tracer prints lines indented by how the calling goroutine's stack relates to the stack
// of the previous line printed through the same [State].
//
// See the package documentation for the meaning of the indentation markers.
type Tracer struct {
	w       *syncWriter
	state   *State
	pal     palette
	capture func() bool
	frames  frameSource
	fatal   func(error)
}

var std = New().State(stdState).Tracer()

// Default returns the process-wide [Tracer] used by the package-level functions.
// It writes to [os.Stdout], diffs against a single shared [State], and captures stacks
// when the environment requests it (see [EnvLibBacktrace]).
func Default() *Tracer {
	return std
}

// Log prints text as traced from the package pkgPath, using the default [Tracer].
func Log(text, pkgPath string) {
	std.output(1, text, pkgPath, skip{})
}

// Printf formats according to a format specifier and prints the result using the default [Tracer].
func Printf(format string, args ...any) {
	std.output(1, fmt.Sprintf(format, args...), "", skip{})
}

// Println formats its operands as [fmt.Sprintln] does, without the trailing newline,
// and prints the result using the default [Tracer].
func Println(args ...any) {
	std.output(1, sprintln(args), "", skip{})
}

// State returns the [State] the tracer diffs against.
func (t *Tracer) State() *State {
	return t.state
}

// Enabled reports whether the next line would be indented, that is, whether stack
// capture is on.
func (t *Tracer) Enabled() bool {
	return t.capture()
}

// Log prints text as traced from the package pkgPath.
// The outermost frame in pkgPath becomes the basis depth whenever a new root starts.
// A pkgPath ending in "/" names every package below that path.
func (t *Tracer) Log(text, pkgPath string) {
	t.output(1, text, pkgPath, skip{})
}

// Printf formats according to a format specifier and prints the result.
// The caller's package is taken from the calling frame.
func (t *Tracer) Printf(format string, args ...any) {
	t.output(1, fmt.Sprintf(format, args...), "", skip{})
}

// Println formats its operands as [fmt.Sprintln] does, without the trailing newline,
// and prints the result.
func (t *Tracer) Println(args ...any) {
	t.output(1, sprintln(args), "", skip{})
}

func sprintln(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// output is the frame every capture is cut at (see outputFunc).
// calldepth counts wrapper frames between output and the traced caller; sk names
// further frames to drop (see filterFrames).
func (t *Tracer) output(calldepth int, text, pkgPath string, sk skip) {
	if !t.capture() {
		t.write(text)
		return
	}

	source := t.frames
	if source == nil {
		source = callerFrames
	}

	c := filterFrames(source(), outputFunc, calldepth, sk, pkgPath)
	if len(c.frames) == 0 {
		t.write(text)
		return
	}

	st := t.state
	st.mu.Lock()
	defer st.mu.Unlock()

	l := layout{
		trace: len(c.frames) - 1,
		match: st.diff(c.frames),
		crate: c.crate,
	}

	t.write(render(l, &st.basis, text, t.pal))
}

func (t *Tracer) write(s string) {
	if err := t.w.writeLine(s); err != nil {
		t.fatal(fmt.Errorf("trace: write output: %w", err))
	}
}

func panicFatal(err error) {
	panic(err)
}
