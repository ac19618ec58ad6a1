package fault

import (
	"fmt"

	"go.uber.org/zap"
)

// Catch runs fn as one unit of work. If a fault escapes fn, the unit ends and
// the Signal is returned; foreign panics are wrapped in a Signal first, and
// in Abort mode they end the process like any other fault. Catch never
// resumes fn.
func Catch(fn func()) (sig *Signal) {
	defer func() {
		if r := recover(); r != nil {
			sig = asSignal(r)
			if isFault(r) && sig.mode == Abort {
				terminate(sig)
			}
		}
	}()

	fn()
	return nil
}

func asSignal(r any) *Signal {
	if sig, ok := r.(*Signal); ok {
		return sig
	}

	sig := newSignal(fmt.Sprintf("panic: %v", r), 1, r)
	sig.stack = panicSite(sig.stack)
	if len(sig.stack) > 0 {
		sig.location = sig.stack[0]
	}
	sig.mode = CurrentMode()

	logger().Error("panic recovered as fault",
		zap.String("message", sig.message),
		zap.Stringer("location", sig.location))
	return sig
}

// Main is the process boundary. A fault escaping fn is reported and the
// process exits with ExitFault; an error returned by fn exits with status 1.
func Main(fn func() error) {
	if code := run(fn); code != 0 {
		exit(code)
	}
}

func run(fn func() error) int {
	var err error
	sig := Catch(func() { err = fn() })

	defer func() { _ = logger().Sync() }()

	if sig != nil {
		writeReport(stderr, sig)
		if sig.mode == Abort {
			return ExitAbort
		}
		return ExitFault
	}
	if err != nil {
		logger().Error("command failed", zap.Error(err))
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
