package kv

import (
	"errors"
	"fmt"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/ib-77/faultline/pkg/rop/kind"
)

// ErrKeyNotFound is the cause reported by Get for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// Error is a failed store operation.
type Error struct {
	op     string
	bucket string
	key    string
	kind   kind.Kind
	err    error
}

func newError(op, bucket, key string, cause error) *Error {
	return &Error{op: op, bucket: bucket, key: key, kind: classify(cause), err: cause}
}

func (e *Error) Kind() kind.Kind {
	if e == nil {
		return kind.Other
	}
	return e.kind
}

func (e *Error) Op() string     { return e.op }
func (e *Error) Bucket() string { return e.bucket }
func (e *Error) Key() string    { return e.key }
func (e *Error) Unwrap() error  { return e.err }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString("kv ")
	b.WriteString(e.op)
	if e.bucket != "" {
		b.WriteByte(' ')
		b.WriteString(e.bucket)
		if e.key != "" {
			b.WriteByte('/')
			b.WriteString(e.key)
		}
	}
	fmt.Fprintf(&b, ": %v", e.err)
	return b.String()
}

var kinds = []struct {
	err  error
	kind kind.Kind
}{
	{ErrKeyNotFound, kind.NotFound},
	{bolt.ErrBucketNotFound, kind.NotFound},
	{bolt.ErrDatabaseReadOnly, kind.PermissionDenied},
	{bolt.ErrTxNotWritable, kind.PermissionDenied},
	{bolt.ErrTimeout, kind.TimedOut},
	{bolt.ErrBucketExists, kind.AlreadyExists},
	{bolt.ErrBucketNameRequired, kind.InvalidInput},
	{bolt.ErrKeyRequired, kind.InvalidInput},
	{bolt.ErrKeyTooLarge, kind.InvalidInput},
	{bolt.ErrValueTooLarge, kind.InvalidInput},
	{bolt.ErrIncompatibleValue, kind.InvalidInput},
	{bolt.ErrInvalid, kind.InvalidData},
	{bolt.ErrVersionMismatch, kind.InvalidData},
	{bolt.ErrChecksum, kind.InvalidData},
	{bolt.ErrDatabaseNotOpen, kind.Unavailable},
	{bolt.ErrTxClosed, kind.Unavailable},
}

func classify(err error) kind.Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return kind.Classify(err)
}
