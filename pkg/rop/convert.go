package rop

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/faultline/pkg/fault"
)

var (
	ErrNoConversion        = errors.New("no conversion registered")
	ErrAmbiguousConversion = errors.New("ambiguous conversion")
)

// Conversion turns a failure of type S into the caller's failure type E.
// Passing a Conversion is checked by the compiler.
type Conversion[S, E any] func(S) E

// Identity is the conversion between equal failure types.
func Identity[E any]() Conversion[E, E] {
	return func(e E) E { return e }
}

// Rule is one registered conversion into E.
type Rule[E any] struct {
	source  reflect.Type
	convert func(any) E
}

// From registers conv for failures whose dynamic type is S, or implements S
// when S is an interface.
func From[S, E any](conv Conversion[S, E]) Rule[E] {
	return Rule[E]{
		source:  reflect.TypeOf((*S)(nil)).Elem(),
		convert: func(v any) E { return conv(v.(S)) },
	}
}

// Source reports the failure type the rule accepts.
func (r Rule[E]) Source() reflect.Type {
	return r.source
}

// Registry is the fixed set of conversions into E used by TryFrom and
// TryValue. Build it once, at package initialisation.
type Registry[E any] struct {
	target reflect.Type
	rules  []Rule[E]
}

// NewRegistry builds a registry. Two rules for the same source type are a
// definition error and raise a fault.
func NewRegistry[E any](rules ...Rule[E]) *Registry[E] {
	seen := make(map[reflect.Type]struct{}, len(rules))
	for _, r := range rules {
		if _, dup := seen[r.source]; dup {
			fault.RaiseAt(1, fmt.Sprintf("rop: duplicate conversion from %s to %s", r.source, reflect.TypeOf((*E)(nil)).Elem()))
		}
		seen[r.source] = struct{}{}
	}

	out := make([]Rule[E], len(rules))
	copy(out, rules)
	return &Registry[E]{target: reflect.TypeOf((*E)(nil)).Elem(), rules: out}
}

// TypeOf is a shorthand for reflect.TypeFor, for use with Require.
func TypeOf[S any]() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}

// Require raises a fault unless every listed source type converts into E
// through exactly one path. Call it from init so a missing or ambiguous
// conversion stops the program before any propagation runs.
func (r *Registry[E]) Require(sources ...reflect.Type) {
	for _, src := range sources {
		if src.AssignableTo(r.target) {
			continue
		}
		if _, err := r.resolve(src); err != nil {
			fault.RaiseAt(1, "rop: "+err.Error())
		}
	}
}

// Convert turns src into E: unchanged when src already is an E, otherwise
// through the single rule that applies to src's dynamic type.
func (r *Registry[E]) Convert(src any) (E, error) {
	if e, ok := src.(E); ok {
		return e, nil
	}

	var zero E
	if src == nil {
		return zero, fmt.Errorf("%w: <nil> to %s", ErrNoConversion, r.target)
	}

	rule, err := r.resolve(reflect.TypeOf(src))
	if err != nil {
		return zero, err
	}
	return rule.convert(src), nil
}

// Len reports the number of registered rules.
func (r *Registry[E]) Len() int {
	return len(r.rules)
}

func (r *Registry[E]) resolve(src reflect.Type) (Rule[E], error) {
	var (
		match Rule[E]
		found []reflect.Type
	)
	for _, rule := range r.rules {
		if applies(rule.source, src) {
			match = rule
			found = append(found, rule.source)
		}
	}

	switch len(found) {
	case 0:
		return match, fmt.Errorf("%w: %s to %s", ErrNoConversion, src, r.target)
	case 1:
		return match, nil
	default:
		return match, fmt.Errorf("%w: %s to %s via %v", ErrAmbiguousConversion, src, r.target, found)
	}
}

func applies(source, src reflect.Type) bool {
	if source == src {
		return true
	}
	return source.Kind() == reflect.Interface && src.Implements(source)
}
