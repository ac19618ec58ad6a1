// Package kv is a bucketed key/value store on a bolt file. Every operation
// returns an rop result whose failure is a *Error classified by kind.
package kv
