package cli

import (
	"github.com/ib-77/faultline/pkg/resource/kv"
	"github.com/ib-77/faultline/pkg/rop"
	"github.com/ib-77/faultline/pkg/rop/kind"
)

// commandError is the failure type every command reports.
type commandError struct {
	kind kind.Kind
	err  error
}

func (e *commandError) Error() string   { return e.err.Error() }
func (e *commandError) Unwrap() error   { return e.err }
func (e *commandError) Kind() kind.Kind { return e.kind }

var commandErrors = rop.NewRegistry(
	rop.From[*kind.Error, *commandError](func(e *kind.Error) *commandError {
		return &commandError{kind: e.Kind(), err: e}
	}),
	rop.From[*kv.Error, *commandError](func(e *kv.Error) *commandError {
		return &commandError{kind: e.Kind(), err: e}
	}),
)

func init() {
	commandErrors.Require(rop.TypeOf[*kind.Error](), rop.TypeOf[*kv.Error]())
}
