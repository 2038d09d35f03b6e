/*
Package trace prints lines indented by the shape of the calling goroutine's stack.

Each line is compared with the stack captured for the previous line. The indentation
shows at a glance whether execution returned to a shallower depth, descended further,
or moved onto a sibling branch, without hand-maintained indentation in recursive or
deeply nested code.

# Hello, world

	package main

	import "github.com/Yokinman/trace"

	func main() {
		trace.Printf("Hello, %s", "Roswell")
	}

Stack capture is costly, so it only happens when requested. Set TRACE_LIB_BACKTRACE
or TRACE_BACKTRACE to any value except "0", or configure a [Tracer] with
[Config.Capture]. Without capture, [Printf] behaves like [fmt.Println] over [fmt.Sprintf].

# Indentation symbols

Each four-column step compares the current stack with the previous line's stack:

  - "    " the stack matches the previous line up to this depth
  - ">---" the stack differs from the previous line at or before this depth
  - "@   " or "@---" the basis depth, like a main function or goroutine
  - "|   " the depth of the line, relative to the basis

The basis is the outermost frame in the caller's package. It is reset whenever the shared
history with the previous line is shallower than the basis.

# Example

	func s(n, k int) int {
		trace.Printf("n:%d, k:%d", n, k)
		if n == k {
			return 1
		}
		if k == 0 || n < k {
			return 0
		}
		return s(n-1, k-1) + s(n-1, k)*k
	}

	func run() {
		trace.Printf("# of ways to group 3 items into 2 unordered sets:")
		trace.Printf("Result: %d", s(3, 2))
	}

prints, when run is called from main:

	@---|   # of ways to group 3 items into 2 unordered sets:
	    >---|   n:3, k:2
	        >---|   n:2, k:1
	            >---|   n:1, k:0
	                |   n:1, k:1
	            |   n:2, k:2
	    |   Result: 3

# Concurrency

The remembered stack lives in a [State]. The default [Tracer] uses one State for the
whole process, so lines from different goroutines diff against each other and may be
indented misleadingly. Give each goroutine its own tracer, configured with [Config.State],
when that matters.

# slog

[Tracer.Logger] returns a [slog.Logger] whose records are traced the same way.

# Failure

If writing a line fails, the tracer's fatal function is called. By default it panics.
*/
package trace
