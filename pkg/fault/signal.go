package fault

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Frame is a single call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	if f.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

// Signal is a raised fault. It is an event, not a failure value: it carries a
// message, the originating location and a stack snapshot.
type Signal struct {
	message  string
	location Frame
	stack    []Frame
	mode     Mode
	value    any
}

func (s *Signal) Message() string { return s.message }

func (s *Signal) Location() Frame { return s.location }

// Stack returns a copy of the captured frames, most recent first.
func (s *Signal) Stack() []Frame {
	out := make([]Frame, len(s.stack))
	copy(out, s.stack)
	return out
}

// Mode reports the mode that was in effect when the signal was raised.
func (s *Signal) Mode() Mode { return s.mode }

// Value is the original panic value when the signal wraps a foreign panic.
func (s *Signal) Value() any { return s.value }

func (s *Signal) String() string {
	return fmt.Sprintf("fault at %s: %s", s.location, s.message)
}

// Format prints the one-line form for %s and %v, and appends the stack
// for %+v.
func (s *Signal) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			writeReport(f, s)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(f, s.String())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", s.String())
	}
}

func writeReport(w io.Writer, s *Signal) {
	_, _ = fmt.Fprintf(w, "fault raised at %s", s.location)
	if s.location.Function != "" {
		_, _ = fmt.Fprintf(w, " (%s)", s.location.Function)
	}
	_, _ = fmt.Fprintf(w, ":\n  %s\n", s.message)
	if len(s.stack) == 0 {
		return
	}
	_, _ = io.WriteString(w, "stack:\n")
	for _, fr := range s.stack {
		_, _ = fmt.Fprintf(w, "  %s\n      %s\n", fr.Function, fr)
	}
}

const maxStackDepth = 64

// newSignal captures the stack starting at the caller skip frames above
// newSignal's caller.
func newSignal(message string, skip int, value any) *Signal {
	stack := captureStack(skip + 2)
	s := &Signal{
		message: message,
		stack:   stack,
		value:   value,
	}
	if len(stack) > 0 {
		s.location = stack[0]
	}
	return s
}

func captureStack(skip int) []Frame {
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+1, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]Frame, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}

// panicSite drops runtime and fault frames so a recovered foreign panic
// points at the code that panicked.
func panicSite(stack []Frame) []Frame {
	for i, fr := range stack {
		if strings.HasPrefix(fr.Function, "runtime.") || strings.Contains(fr.Function, "/pkg/fault.") {
			continue
		}
		return stack[i:]
	}
	return stack
}
