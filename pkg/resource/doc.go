// Package resource opens, creates and removes files, reporting recoverable
// failures as rop results carrying a *kind.Error. The kind is decided where
// the failure is detected so callers can branch on it without inspecting
// platform errors.
package resource
