// Package roman validates Roman numerals and converts them to decimal.
//
// Input goes through three stages:
//
//   - Normalize strips every whitespace rune and uppercases the rest.
//   - Validate enforces the numeral grammar and reports the first violation.
//   - ToDecimal reads a validated numeral left to right with one-symbol lookahead.
//
// Numeral ties the stages together and holds the canonical string alongside
// its decimal value:
//
//	var n roman.Numeral
//	if err := n.Set("  mCmXc "); err != nil {
//		// handle error
//	}
//	fmt.Println(n.Roman(), n.Decimal()) // MCMXC 1990
//
// # Grammar
//
// Validation applies four rules in order and stops at the first failure:
//
//  1. the input is non-empty (ErrEmptyInput);
//  2. every rune is one of I V X L C D M (ErrInvalidSymbol);
//  3. V, L and D never repeat, I, X, C and M repeat at most three times in a
//     row (ErrExcessiveRepetition);
//  4. a symbol may precede a larger one only as IV, IX, XL, XC, CD or CM
//     (ErrInvalidSubtractivePair).
//
// The grammar is local: it inspects runs and adjacent pairs only. Shapes such
// as "IXIX" or "XCX" pass all four rules and are accepted. Canonical numerals
// decode into [MinValue, MaxValue]; accepted non-canonical shapes can exceed
// MaxValue (MMMCMM reads as 4900).
//
// # Errors
//
// Validation failures are returned as *ValidationError, which wraps one of the
// sentinel errors so callers can use errors.Is for the kind and errors.As for
// the offending symbol or pair.
//
// # Concurrency
//
// The package functions hold no state and are safe for concurrent use. A
// Numeral is an ordinary value; guard it yourself if it is shared.
package roman
