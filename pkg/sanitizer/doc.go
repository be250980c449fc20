// Package sanitizer provides small, stateless helpers for cleaning user-supplied
// text before it reaches validation.
//
// Every helper is a plain func(string) string (or close to it) so they can be
// chained with the higher-order Apply and Compose helpers:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveWhitespace,
//	    sanitizer.ToUpper,
//	)
//
//	canonical := clean("  mCm Xc\n") // "MCMXC"
//
// # Error handling
//
// None of the helpers returns an error. They always produce a result, even
// for input that later fails validation.
//
// # Concurrency
//
// There is no package-level mutable state; all helpers are safe for use from
// multiple goroutines.
package sanitizer
