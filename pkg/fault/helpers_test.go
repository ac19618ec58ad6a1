package fault

import (
	"bytes"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// withMode forces the process mode for one test and restores the unlocked
// default afterwards. Tests using it must not run in parallel.
func withMode(t *testing.T, m Mode) {
	t.Helper()
	modeMu.Lock()
	prev, prevLocked := Mode(mode.Load()), modeLocked
	mode.Store(int32(m))
	modeLocked = true
	modeMu.Unlock()

	t.Cleanup(func() {
		modeMu.Lock()
		mode.Store(int32(prev))
		modeLocked = prevLocked
		modeMu.Unlock()
	})
}

// stubExit replaces os.Exit and stderr; the returned pointer holds the last
// exit code (-1 if exit was not called).
func stubExit(t *testing.T) (*int, *bytes.Buffer) {
	t.Helper()
	code := -1
	out := &bytes.Buffer{}
	prevExit, prevErr := exit, stderr
	exit = func(c int) { code = c }
	stderr = out
	t.Cleanup(func() {
		exit, stderr = prevExit, prevErr
	})
	return &code, out
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}
