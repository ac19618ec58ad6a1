package fault

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaise_UnwindCarriesMessageAndLocation(t *testing.T) {
	withMode(t, Unwind)
	logs := observeLogs(t)

	sig := Catch(func() {
		Raise("disk on fire")
	})

	require.NotNil(t, sig)
	assert.Equal(t, "disk on fire", sig.Message())
	assert.Equal(t, Unwind, sig.Mode())
	assert.True(t, strings.HasSuffix(sig.Location().File, "raise_test.go"), sig.Location().File)
	assert.Contains(t, sig.Location().Function, "TestRaise_UnwindCarriesMessageAndLocation")
	assert.NotEmpty(t, sig.Stack())
	assert.Nil(t, sig.Value())

	entries := logs.FilterMessage("fault raised").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk on fire", entries[0].ContextMap()["message"])
}

func TestRaise_StopsExecution(t *testing.T) {
	withMode(t, Unwind)

	reached := false
	sig := Catch(func() {
		Raisef("bad value %d", 42)
		reached = true
	})

	require.NotNil(t, sig)
	assert.Equal(t, "bad value 42", sig.Message())
	assert.False(t, reached)
}

func helperThatRaises() {
	RaiseAt(1, "raised for caller")
}

func TestRaiseAt_AttributesToCaller(t *testing.T) {
	withMode(t, Unwind)

	sig := Catch(helperThatRaises)

	require.NotNil(t, sig)
	assert.Contains(t, sig.Location().Function, "Catch")
}

func TestAssertAndCheckIndex(t *testing.T) {
	withMode(t, Unwind)

	assert.Nil(t, Catch(func() { Assert(true, "fine") }))
	assert.Nil(t, Catch(func() { CheckIndex(2, 3) }))

	sig := Catch(func() { Assert(false, "queue not empty") })
	require.NotNil(t, sig)
	assert.Equal(t, "assertion failed: queue not empty", sig.Message())

	sig = Catch(func() { CheckIndex(5, 3) })
	require.NotNil(t, sig)
	assert.Equal(t, "index out of bounds: the len is 3 but the index is 5", sig.Message())

	sig = Catch(func() { CheckIndex(-1, 3) })
	require.NotNil(t, sig)
}

func TestRaise_AbortTerminatesImmediately(t *testing.T) {
	withMode(t, Abort)
	code, out := stubExit(t)

	sig := Catch(func() { Raise("no way back") })

	require.NotNil(t, sig)
	assert.Equal(t, Abort, sig.Mode())
	assert.Equal(t, ExitAbort, *code)
	assert.Contains(t, out.String(), "no way back")
}

func TestSignalFormat(t *testing.T) {
	withMode(t, Unwind)

	sig := Catch(func() { Raise("formatted") })
	require.NotNil(t, sig)

	short := fmt.Sprintf("%v", sig)
	assert.True(t, strings.HasPrefix(short, "fault at "))
	assert.True(t, strings.HasSuffix(short, ": formatted"))
	assert.Equal(t, short, sig.String())

	long := fmt.Sprintf("%+v", sig)
	assert.Contains(t, long, "fault raised at")
	assert.Contains(t, long, "stack:")
	assert.Contains(t, long, "raise_test.go")
}
