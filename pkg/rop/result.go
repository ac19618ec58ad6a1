package rop

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/faultline/pkg/fault"
)

// Result holds either a success payload of type T or a failure of type E.
// Construct it with Success or Fail; the zero Result is not a valid value.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

// Unit is the payload of operations that succeed without a value.
type Unit struct{}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Result returns the success payload, or T's zero value on failure.
func (r Result[T, E]) Result() T {
	return r.result
}

// Err returns the failure, or E's zero value on success.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) Get() (T, bool) {
	r.mustBeValid(2)
	return r.result, r.isSuccess
}

func (r Result[T, E]) Failure() (E, bool) {
	r.mustBeValid(2)
	return r.err, !r.isSuccess
}

// IsSuccess and IsFailure raise a fault for a Result that is neither.
func (r Result[T, E]) IsSuccess() bool {
	r.mustBeValid(2)
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	r.mustBeValid(2)
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// IsValid reports whether r was built by Success or Fail.
func (r Result[T, E]) IsValid() bool {
	return r.id != uuid.Nil
}

// Expect returns the success payload. On failure it raises a fault whose
// message is msg followed by the failure's display form.
func (r Result[T, E]) Expect(msg string) T {
	r.mustBeValid(2)
	if !r.isSuccess {
		fault.RaiseAt(1, msg+": "+Display(r.err))
	}
	return r.result
}

// Unwrap returns the success payload, raising a fault built from the
// failure's debug form otherwise.
func (r Result[T, E]) Unwrap() T {
	r.mustBeValid(2)
	if !r.isSuccess {
		fault.RaiseAt(1, "called Unwrap on a failure value: "+Debug(r.err))
	}
	return r.result
}

func (r Result[T, E]) UnwrapOr(def T) T {
	r.mustBeValid(2)
	if r.isSuccess {
		return r.result
	}
	return def
}

// Match calls exactly one of the handlers.
func (r Result[T, E]) Match(onSuccess func(T), onFailure func(E)) {
	r.mustBeValid(2)
	if r.isSuccess {
		onSuccess(r.result)
		return
	}
	onFailure(r.err)
}

func (r Result[T, E]) mustBeValid(skip int) {
	if !r.IsValid() {
		fault.RaiseAt(skip, "use of a Result that was not built by Success or Fail")
	}
}
