package fault

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

// Exit statuses used when a signal ends the process.
const (
	ExitFault = 101
	ExitAbort = 134
)

var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr

	logPtr atomic.Pointer[zap.Logger]
)

// SetLogger installs the logger every raised signal is reported to.
// A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	logPtr.Store(l)
}

func logger() *zap.Logger {
	if l := logPtr.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Raise signals an unrecoverable fault. It does not return.
func Raise(msg string) {
	raise(newSignal(msg, 1, nil))
}

// Raisef is Raise with a formatted message.
func Raisef(format string, args ...any) {
	raise(newSignal(fmt.Sprintf(format, args...), 1, nil))
}

// RaiseAt attributes the fault to the caller skip frames above the caller of
// RaiseAt. Helpers that raise on behalf of their caller pass 1.
func RaiseAt(skip int, msg string) {
	raise(newSignal(msg, skip+1, nil))
}

// Assert raises when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		raise(newSignal("assertion failed: "+msg, 1, nil))
	}
}

// CheckIndex raises when i is outside [0, n).
func CheckIndex(i, n int) {
	if i < 0 || i >= n {
		raise(newSignal(fmt.Sprintf("index out of bounds: the len is %d but the index is %d", n, i), 1, nil))
	}
}

func raise(s *Signal) {
	s.mode = CurrentMode()

	logger().Error("fault raised",
		zap.String("message", s.message),
		zap.Stringer("location", s.location),
		zap.Stringer("mode", s.mode))

	if s.mode == Abort {
		terminate(s)
	}
	panic(s)
}

// terminate ends the process without unwinding.
func terminate(s *Signal) {
	writeReport(stderr, s)
	_ = logger().Sync()
	exit(ExitAbort)
}
