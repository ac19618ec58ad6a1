package rop

// MapErr converts the failure with fn and keeps a success untouched. The
// returned result keeps r's identity.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	r.mustBeValid(2)
	out := Result[T, F]{
		id:        r.id,
		createdAt: r.createdAt,
		isSuccess: r.isSuccess,
	}
	if r.isSuccess {
		out.result = r.result
	} else {
		out.err = fn(r.err)
	}
	return out
}

// Map transforms the success payload with fn.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	r.mustBeValid(2)
	out := Result[U, E]{
		id:        r.id,
		createdAt: r.createdAt,
		isSuccess: r.isSuccess,
	}
	if r.isSuccess {
		out.result = fn(r.result)
	} else {
		out.err = r.err
	}
	return out
}

// AndThen feeds the success payload to fn; a failure passes through.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	r.mustBeValid(2)
	if r.isSuccess {
		return fn(r.result)
	}
	return Fail[U](r.err)
}

// FromPair adapts a Go (value, error) return. A nil error, including a typed
// nil pointer, is a success.
func FromPair[T, E any](v T, err error, conv Conversion[error, E]) Result[T, E] {
	if IsNil(err) {
		return Success[T, E](v)
	}
	return Fail[T](conv(err))
}

// Collect gathers the payloads of items in order, stopping at the first
// failure.
func Collect[T, E any](items ...WithFailure[T, E]) Result[[]T, E] {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !it.IsSuccess() {
			return Fail[[]T](it.Err())
		}
		out = append(out, it.Result())
	}
	return Success[[]T, E](out)
}
