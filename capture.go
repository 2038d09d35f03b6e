package trace

import (
	"runtime"
	"strconv"
	"strings"
)

// outputFunc is the qualified name of the frame where every captured stack is cut.
// Frames inside it (runtime.Callers, the capture itself) are never kept.
const outputFunc = "github.com/Yokinman/trace.(*Tracer).output"

// frameSource snapshots the calling goroutine's stack, innermost frame first.
type frameSource func() []runtime.Frame

func callerFrames() []runtime.Frame {
	pcs := make([]uintptr, 64)
	for {
		n := runtime.Callers(1, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, 2*len(pcs))
	}
	if len(pcs) == 0 {
		return nil
	}

	frames := make([]runtime.Frame, 0, len(pcs))
	it := runtime.CallersFrames(pcs)
	for {
		f, more := it.Next()
		frames = append(frames, f)
		if !more {
			break
		}
	}
	return frames
}

// descriptor identifies a frame by function and source line. Program counters are left
// out so that two calls made from one line compare equal.
func descriptor(f runtime.Frame) string {
	fn := f.Function
	if fn == "" {
		fn = "?"
	}
	return fn + " " + f.File + ":" + strconv.Itoa(f.Line)
}

// capture is a filtered stack.
type capture struct {
	frames []string // root first
	crate  int      // index of the outermost frame in the caller's package, 0 if none
}

// skip names the frames dropped beyond the wrapper frames of an entry point.
type skip struct {
	resume string // keep frames from the first one running this function
	trim   string // without a resume frame, drop frames whose function starts with trim
}

// filterFrames cuts frames (innermost first) at the stop function, drops calldepth
// wrapper frames beyond it and then the frames named by sk.
// Without a stop frame, nothing is cut. The remaining frames are returned root first.
//
// If pkgPath is empty, the caller's package is taken from the innermost kept frame.
func filterFrames(frames []runtime.Frame, stop string, calldepth int, sk skip, pkgPath string) capture {
	start := 0
	for i, f := range frames {
		if f.Function == stop {
			start = i + 1 + calldepth
			break
		}
	}

	resumed := false
	if sk.resume != "" {
		for i := start; i < len(frames); i++ {
			if frames[i].Function == sk.resume {
				start, resumed = i, true
				break
			}
		}
	}
	for !resumed && sk.trim != "" && start < len(frames) && strings.HasPrefix(frames[start].Function, sk.trim) {
		start++
	}
	if start >= len(frames) {
		return capture{}
	}

	kept := frames[start:]
	if pkgPath == "" {
		pkgPath = packageOf(kept[0].Function)
	}
	prefix := funcPrefix(pkgPath)

	c := capture{frames: make([]string, len(kept))}
	for i := range kept {
		f := kept[len(kept)-1-i]
		if c.crate == 0 && strings.HasPrefix(f.Function, prefix) {
			c.crate = i
		}
		c.frames[i] = descriptor(f)
	}
	return c
}

// funcForPC returns the qualified function name of the frame at pc, or "" for a zero pc.
func funcForPC(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	f, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return f.Function
}

// packageOf returns the package path of a qualified function name, such as
// "example.com/pkg" for "example.com/pkg.(*T).Method.func1".
func packageOf(fn string) string {
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}

// funcPrefix returns the prefix shared by qualified names of functions in pkgPath.
// The linker escapes dots in the last path element ("gopkg.in/yaml%2ev3.Marshal").
//
// A pkgPath ending in "/" names every package below it: "example.com/app/" covers
// "example.com/app/worker" but not "example.com/app" itself.
func funcPrefix(pkgPath string) string {
	if strings.HasSuffix(pkgPath, "/") {
		return pkgPath
	}
	slash := strings.LastIndexByte(pkgPath, '/')
	return pkgPath[:slash+1] + strings.ReplaceAll(pkgPath[slash+1:], ".", "%2e") + "."
}
