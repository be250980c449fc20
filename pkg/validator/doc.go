// Package validator provides composable validation rules with
// translation-friendly error metadata.
//
// Each exported helper returns a Rule: a boolean Check plus the
// ValidationError to report when the check fails. Rules are evaluated with
// Apply, which collects every failure, or ApplyFirst, which stops at the
// first one. Both return a ValidationErrors slice that satisfies the error
// interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("numeral", req.Numeral),
//	    validator.MaxLenString("numeral", req.Numeral, 64),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
// RomanNumeral adapts the roman package's grammar into a Rule, so numeral
// fields can be validated next to ordinary request fields.
//
// The package keeps no global state and is safe for concurrent use.
package validator
