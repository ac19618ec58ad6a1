// Package kind classifies why a recoverable operation failed.
//
// Every classified error exposes Kind() returning exactly one value of the
// declared set. Classification happens where the raw cause is visible (the
// producer that saw the platform error), and a cause that is not recognised
// is always Other, never a guessed specific kind.
//
//	f := resource.Open(name)
//	if f.IsFailure() && f.Err().Kind() == kind.NotFound {
//		f = resource.Create(name)
//	}
package kind
