package rop

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/faultline/pkg/fault"
)

type codeErr struct{ code int }

func (c codeErr) Error() string { return fmt.Sprintf("code %d", c.code) }

func TestSuccess(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	r := Success[int, error](5)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.True(t, r.IsValid())
	assert.Equal(t, 5, r.Result())
	assert.Nil(t, r.Err())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().Before(before))

	v, ok := r.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, failed := r.Failure()
	assert.False(t, failed)
}

func TestFail(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	r := Fail[string](err)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, "", r.Result())
	assert.Same(t, err, r.Err())

	_, ok := r.Get()
	assert.False(t, ok)

	e, failed := r.Failure()
	assert.True(t, failed)
	assert.Same(t, err, e)
}

func TestResultsHaveDistinctIds(t *testing.T) {
	t.Parallel()

	a := Success[int, error](1)
	b := Success[int, error](1)
	assert.NotEqual(t, a.Id(), b.Id())
}

func TestExpect_SuccessReturnsPayloadWithoutFault(t *testing.T) {
	t.Parallel()

	var got int
	sig := fault.Catch(func() {
		got = Success[int, codeErr](42).Expect("should not fail")
	})

	assert.Nil(t, sig)
	assert.Equal(t, 42, got)
}

func TestExpect_FailureRaisesWithMessageAndDisplay(t *testing.T) {
	t.Parallel()

	reached := false
	sig := fault.Catch(func() {
		Fail[int](codeErr{code: 7}).Expect("loading settings")
		reached = true
	})

	require.NotNil(t, sig)
	assert.False(t, reached)
	assert.Equal(t, "loading settings: code 7", sig.Message())
	assert.Contains(t, sig.Location().File, "result_test.go")
}

func TestUnwrap_FailureUsesDebugForm(t *testing.T) {
	t.Parallel()

	sig := fault.Catch(func() {
		Fail[int](codeErr{code: 3}).Unwrap()
	})

	require.NotNil(t, sig)
	assert.Equal(t, "called Unwrap on a failure value: rop.codeErr{code:3}", sig.Message())

	assert.Nil(t, fault.Catch(func() {
		assert.Equal(t, "ok", Success[string, codeErr]("ok").Unwrap())
	}))
}

func TestZeroResultIsRejected(t *testing.T) {
	t.Parallel()

	var r Result[int, error]
	assert.False(t, r.IsValid())

	sig := fault.Catch(func() { r.Expect("zero") })
	require.NotNil(t, sig)
	assert.Contains(t, sig.Message(), "not built by Success or Fail")
}

func TestZeroResultFaultsWhenConsumed(t *testing.T) {
	t.Parallel()

	var zero Result[int, string]
	uses := map[string]func(){
		"IsSuccess": func() { zero.IsSuccess() },
		"IsFailure": func() { zero.IsFailure() },
		"Get":       func() { zero.Get() },
		"Failure":   func() { zero.Failure() },
		"UnwrapOr":  func() { zero.UnwrapOr(7) },
		"Unwrap":    func() { zero.Unwrap() },
		"Match":     func() { zero.Match(func(int) {}, func(string) {}) },
		"Map":       func() { Map(zero, func(v int) int { return v }) },
		"MapErr":    func() { MapErr(zero, func(e string) error { return errors.New(e) }) },
		"AndThen":   func() { AndThen(zero, func(v int) Result[int, string] { return Success[int, string](v) }) },
		"Collect":   func() { Collect[int, string](zero) },
	}

	for name, use := range uses {
		matched := false
		sig := fault.Catch(func() {
			use()
			matched = true
		})
		if assert.NotNil(t, sig, name) {
			assert.Contains(t, sig.Message(), "not built by Success or Fail", name)
		}
		assert.False(t, matched, name)
	}
}

func TestZeroResultFaultBlamesCaller(t *testing.T) {
	t.Parallel()

	var zero Result[int, string]
	sig := fault.Catch(func() { zero.Match(func(int) {}, func(string) {}) })

	require.NotNil(t, sig)
	assert.Contains(t, sig.Location().File, "result_test.go")
}

func TestUnwrapOrAndMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Success[int, error](1).UnwrapOr(9))
	assert.Equal(t, 9, Fail[int](errors.New("x")).UnwrapOr(9))

	var seen []string
	Success[int, error](1).Match(
		func(v int) { seen = append(seen, fmt.Sprint("ok ", v)) },
		func(err error) { seen = append(seen, "fail") })
	Fail[int](errors.New("bad")).Match(
		func(v int) { seen = append(seen, "ok") },
		func(err error) { seen = append(seen, "fail "+err.Error()) })

	assert.Equal(t, []string{"ok 1", "fail bad"}, seen)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	orig := Fail[int](codeErr{code: 4})
	mapped := MapErr(orig, func(e codeErr) string { return fmt.Sprintf("wrapped %d", e.code) })

	assert.True(t, mapped.IsFailure())
	assert.Equal(t, "wrapped 4", mapped.Err())
	assert.Equal(t, orig.Id(), mapped.Id())
	assert.Equal(t, codeErr{code: 4}, orig.Err(), "original is untouched")

	called := false
	ok := MapErr(Success[int, codeErr](8), func(e codeErr) string {
		called = true
		return ""
	})
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 8, ok.Result())
	assert.False(t, called)
}

func TestMapAndAndThen(t *testing.T) {
	t.Parallel()

	doubled := Map(Success[int, error](4), func(v int) int { return v * 2 })
	assert.Equal(t, 8, doubled.Result())

	err := errors.New("nope")
	failed := Map(Fail[int](err), func(v int) string { return "unused" })
	assert.Same(t, err, failed.Err())

	half := func(v int) Result[int, error] {
		if v%2 != 0 {
			return Fail[int](errors.New("odd"))
		}
		return Success[int, error](v / 2)
	}
	assert.Equal(t, 2, AndThen(Success[int, error](4), half).Result())
	assert.EqualError(t, AndThen(Success[int, error](3), half).Err(), "odd")
	assert.Same(t, err, AndThen(Fail[int](err), half).Err())
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	toCode := func(err error) codeErr { return codeErr{code: len(err.Error())} }

	ok := FromPair(3, nil, toCode)
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, 3, ok.Result())

	var typedNil *codeErrPtr
	ok = FromPair(4, error(typedNil), toCode)
	assert.True(t, ok.IsSuccess(), "typed nil error counts as no error")

	failed := FromPair(0, errors.New("abc"), toCode)
	assert.Equal(t, codeErr{code: 3}, failed.Err())
}

type codeErrPtr struct{}

func (*codeErrPtr) Error() string { return "ptr" }

func TestCollect(t *testing.T) {
	t.Parallel()

	all := Collect[int, error](Success[int, error](1), Success[int, error](2))
	assert.Equal(t, []int{1, 2}, all.Result())

	err := errors.New("second")
	partial := Collect[int, error](Success[int, error](1), Fail[int](err), Fail[int](errors.New("third")))
	assert.Same(t, err, partial.Err())

	empty := Collect[int, error]()
	assert.True(t, empty.IsSuccess())
	assert.Empty(t, empty.Result())
}
