package rop

import (
	"fmt"
	"runtime"

	"github.com/ib-77/faultline/pkg/fault"
)

// Frame is the propagation target of one Do call. It only exists inside the
// body passed to Do, so Try cannot be used by a function that does not
// itself return a Result.
//
// A frame belongs to the goroutine running its Do. A failing Try on a
// goroutine started by the body has no Do to return to: the panic ends that
// goroutine and reports the misuse. Hand results back over a channel and Try
// them on the Do goroutine instead.
type Frame[E any] struct {
	reg    *Registry[E]
	opener string
	done   bool
}

type propagation[E any] struct {
	frame *Frame[E]
	err   E
}

// ControlFlow marks propagation as a non-local return for fault.Scoped.
func (*propagation[E]) ControlFlow() {}

// Error describes a propagation that escaped its Do, which only happens when
// Try runs on another goroutine.
func (p *propagation[E]) Error() string {
	return fmt.Sprintf("rop: Try outside the goroutine running the Do opened by %s", p.frame.opener)
}

// Do runs body and returns its result. A Try inside body that meets a
// failure ends body at once and Do returns that failure.
func Do[T, E any](body func(f *Frame[E]) Result[T, E]) Result[T, E] {
	return do(nil, body)
}

// DoWith is Do with a registry used by TryFrom and TryValue.
func DoWith[T, E any](reg *Registry[E], body func(f *Frame[E]) Result[T, E]) Result[T, E] {
	return do(reg, body)
}

func do[T, E any](reg *Registry[E], body func(f *Frame[E]) Result[T, E]) (out Result[T, E]) {
	f := &Frame[E]{reg: reg, opener: callerName(3)}

	defer func() {
		f.done = true
		if r := recover(); r != nil {
			if p, ok := r.(*propagation[E]); ok && p.frame == f {
				out = Fail[T](p.err)
				return
			}
			panic(r)
		}
	}()

	return body(f)
}

// Try yields the success payload of r, or returns r's failure from the
// enclosing Do.
func Try[T, E any](f *Frame[E], r Result[T, E]) T {
	f.check()
	r.mustBeValid(2)
	if r.isSuccess {
		return r.result
	}
	panic(&propagation[E]{frame: f, err: r.err})
}

// TryConv is Try across failure types, converting with conv.
func TryConv[T, S, E any](f *Frame[E], r Result[T, S], conv Conversion[S, E]) T {
	f.check()
	r.mustBeValid(2)
	if r.isSuccess {
		return r.result
	}
	panic(&propagation[E]{frame: f, err: conv(r.err)})
}

// TryFrom is Try across failure types, converting through the frame's
// registry.
func TryFrom[T, S, E any](f *Frame[E], r Result[T, S]) T {
	f.check()
	r.mustBeValid(2)
	if r.isSuccess {
		return r.result
	}
	panic(&propagation[E]{frame: f, err: f.convert(r.err)})
}

// TryValue bridges a Go (value, error) call into the frame.
func TryValue[T, E any](f *Frame[E], v T, err error) T {
	f.check()
	if IsNil(err) {
		return v
	}
	panic(&propagation[E]{frame: f, err: f.convert(err)})
}

// Fail returns err from the enclosing Do.
func (f *Frame[E]) Fail(err E) {
	f.check()
	panic(&propagation[E]{frame: f, err: err})
}

// Opener names the function that called Do.
func (f *Frame[E]) Opener() string {
	return f.opener
}

func (f *Frame[E]) check() {
	if f == nil {
		fault.RaiseAt(2, "rop: propagation through a nil frame")
	}
	if f.done {
		fault.RaiseAt(2, fmt.Sprintf("rop: frame opened by %s used after it returned", f.opener))
	}
}

func (f *Frame[E]) convert(src any) E {
	if e, ok := src.(E); ok {
		return e
	}
	if f.reg == nil {
		fault.RaiseAt(2, fmt.Sprintf("rop: %s: failure of type %T needs a conversion but the frame has no registry", f.opener, src))
	}
	e, err := f.reg.Convert(src)
	if err != nil {
		fault.RaiseAt(2, fmt.Sprintf("rop: %s: %v", f.opener, err))
	}
	return e
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
