package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure is satisfied by every Result[T, E]
type WithFailure[T, E any] interface {
	ResultProvider[T]
	// Err returns the failure if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ WithFailure[int, error] = Result[int, error]{}
