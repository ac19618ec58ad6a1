package kind

import (
	"fmt"
	"strings"
)

// Error is a failure classified at the point of detection.
type Error struct {
	kind Kind
	op   string
	path string
	err  error
}

// Sentinels for errors.Is matching by kind.
var (
	ErrNotFound         = &Error{kind: NotFound}
	ErrPermissionDenied = &Error{kind: PermissionDenied}
	ErrAlreadyExists    = &Error{kind: AlreadyExists}
	ErrInvalidInput     = &Error{kind: InvalidInput}
	ErrInvalidData      = &Error{kind: InvalidData}
	ErrTimedOut         = &Error{kind: TimedOut}
	ErrInterrupted      = &Error{kind: Interrupted}
	ErrUnsupported      = &Error{kind: Unsupported}
	ErrUnavailable      = &Error{kind: Unavailable}
	ErrOther            = &Error{kind: Other}
)

// New creates an error of kind k for op on path. cause may be nil.
func New(k Kind, op, path string, cause error) *Error {
	return &Error{kind: k.normalize(), op: op, path: path, err: cause}
}

// Wrap classifies cause with Classify and wraps it.
func Wrap(op, path string, cause error) *Error {
	return &Error{kind: Classify(cause), op: op, path: path, err: cause}
}

// Errorf creates an error of kind k with a formatted cause.
func Errorf(k Kind, op, path, format string, args ...any) *Error {
	return New(k, op, path, fmt.Errorf(format, args...))
}

func (e *Error) Kind() Kind {
	if e == nil {
		return Other
	}
	return e.kind
}

func (e *Error) Op() string   { return e.op }
func (e *Error) Path() string { return e.path }

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Error renders "op path: cause", falling back to the kind description.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.op)
	if e.path != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.path)
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	if e.err != nil {
		b.WriteString(e.err.Error())
	} else {
		b.WriteString(strings.ToLower(e.kind.Description()))
	}
	return b.String()
}

// Is matches the kind sentinels: a target *Error with no op, path or cause
// matches any error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.op != "" || t.path != "" || t.err != nil {
		return e == t
	}
	return e.kind == t.kind
}

func (e *Error) GoString() string {
	if e == nil {
		return "(*kind.Error)(nil)"
	}
	return fmt.Sprintf("&kind.Error{Kind:%s, Op:%q, Path:%q, Err:%v}", e.kind, e.op, e.path, e.err)
}
