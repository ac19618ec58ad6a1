package fault

import (
	"fmt"

	"go.uber.org/zap"
)

// ControlFlow is implemented by panic values that carry a non-local return
// rather than a fault. Scoped unwinds them in every mode.
type ControlFlow interface {
	ControlFlow()
}

type cleanup struct {
	name string
	fn   func()
}

// Scope owns the cleanups registered while its Scoped block runs.
type Scope struct {
	cleanups []cleanup
	closed   bool
}

// Defer registers fn to run when the scope exits, after every cleanup
// registered later.
func (s *Scope) Defer(name string, fn func()) {
	if s.closed {
		RaiseAt(1, fmt.Sprintf("cleanup %q registered on a closed scope", name))
	}
	s.cleanups = append(s.cleanups, cleanup{name: name, fn: fn})
}

// Len reports the number of pending cleanups.
func (s *Scope) Len() int {
	return len(s.cleanups)
}

// Scoped runs fn with a fresh Scope. Cleanups run in reverse registration
// order when fn returns and when a panic unwinds through the scope. In Abort
// mode a fault, including a runtime panic, ends the process without running
// any of them.
func Scoped(fn func(s *Scope)) {
	s := &Scope{}

	defer func() {
		r := recover()
		if r == nil {
			if failed := s.close(false); failed != "" {
				Raisef("cleanup %q panicked", failed)
			}
			return
		}
		if sig, ok := r.(*Signal); ok && sig.mode == Abort {
			s.closed = true
			panic(r)
		}
		if isFault(r) && CurrentMode() == Abort {
			s.closed = true
			sig := asSignal(r)
			terminate(sig)
			panic(sig)
		}
		s.close(true)
		panic(r)
	}()

	fn(s)
}

// close runs the cleanups innermost first and returns the name of the first
// one that panicked.
func (s *Scope) close(unwinding bool) (failed string) {
	s.closed = true
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		c := s.cleanups[i]
		if !runCleanup(c, unwinding) && failed == "" {
			failed = c.name
		}
	}
	s.cleanups = nil
	return failed
}

func runCleanup(c cleanup, unwinding bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger().Error("scope cleanup panicked",
				zap.String("cleanup", c.name),
				zap.Bool("unwinding", unwinding),
				zap.Any("panic", r))
			ok = false
		}
	}()

	logger().Debug("running scope cleanup", zap.String("cleanup", c.name), zap.Bool("unwinding", unwinding))
	c.fn()
	return true
}

// isFault reports whether a recovered value is a fault that was not raised
// through this package.
func isFault(r any) bool {
	switch r.(type) {
	case *Signal, ControlFlow:
		return false
	}
	return true
}
