package kind

import (
	"fmt"
	"strings"
)

// Kind is the cause of a recoverable failure. The zero value is Other.
type Kind uint8

const (
	Other            Kind = iota // Unclassified failure.
	NotFound                     // Named resource does not exist.
	PermissionDenied             // Caller lacks the rights for the operation.
	AlreadyExists                // Resource exists and must not.
	InvalidInput                 // Argument rejected before the operation ran.
	InvalidData                  // Stored or received data is malformed.
	TimedOut                     // Operation did not finish in time.
	Interrupted                  // Operation was cancelled.
	Unsupported                  // Operation not supported by the target.
	Unavailable                  // Target is closed or not reachable.
)

// Entry describes a kind in the registry.
type Entry struct {
	Kind        Kind
	Name        string
	Code        string
	Description string
}

var entries = []Entry{
	{Kind: Other, Name: "other", Code: "80000", Description: "Unclassified failure"},
	{Kind: NotFound, Name: "not_found", Code: "80001", Description: "Resource not found"},
	{Kind: PermissionDenied, Name: "permission_denied", Code: "80002", Description: "Permission denied"},
	{Kind: AlreadyExists, Name: "already_exists", Code: "80003", Description: "Resource already exists"},
	{Kind: InvalidInput, Name: "invalid_input", Code: "80004", Description: "Invalid input"},
	{Kind: InvalidData, Name: "invalid_data", Code: "80005", Description: "Invalid data"},
	{Kind: TimedOut, Name: "timed_out", Code: "80006", Description: "Operation timed out"},
	{Kind: Interrupted, Name: "interrupted", Code: "80007", Description: "Operation interrupted"},
	{Kind: Unsupported, Name: "unsupported", Code: "80008", Description: "Operation unsupported"},
	{Kind: Unavailable, Name: "unavailable", Code: "80009", Description: "Resource unavailable"},
}

var (
	byName = make(map[string]Kind, len(entries))
	byCode = make(map[string]Entry, len(entries))
)

func init() {
	for _, e := range entries {
		byName[e.Name] = e.Kind
		byCode[e.Code] = e
	}
}

// Valid reports whether k belongs to the declared set.
func (k Kind) Valid() bool {
	return int(k) < len(entries)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return entries[k].Name
}

// Code returns the stable code of k; kinds outside the set report Other's.
func (k Kind) Code() string {
	return entries[k.normalize()].Code
}

func (k Kind) Description() string {
	return entries[k.normalize()].Description
}

func (k Kind) normalize() Kind {
	if !k.Valid() {
		return Other
	}
	return k
}

// Registry returns the declared kinds in stable order.
func Registry() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// All returns every declared kind, Other first.
func All() []Kind {
	out := make([]Kind, len(entries))
	for i, e := range entries {
		out[i] = e.Kind
	}
	return out
}

// DescriptionFor returns the description registered for code.
func DescriptionFor(code string) (string, bool) {
	e, ok := byCode[code]
	return e.Description, ok
}

// Parse resolves a kind by name ("not_found") or code ("80001").
func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := byName[s]; ok {
		return k, nil
	}
	if e, ok := byCode[s]; ok {
		return e.Kind, nil
	}
	return Other, fmt.Errorf("unknown error kind %q", s)
}
