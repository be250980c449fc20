package validator

import "github.com/dmitrymomot/deromanizer/pkg/roman"

// RomanNumeral validates that value, after normalization, is a legal Roman numeral.
// The error carries the numeral grammar's own message and translation key so
// the offending symbol or pair reaches the client.
func RomanNumeral(field, value string) Rule {
	err := roman.Validate(roman.Normalize(value))

	rule := Rule{
		Check: func() bool { return err == nil },
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid Roman numeral",
			TranslationKey: "validation.roman",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}

	if verr, ok := roman.AsValidationError(err); ok {
		rule.Error.Message = verr.Error()
		rule.Error.TranslationKey = verr.TranslationKey()
		vals := verr.TranslationValues()
		for i := 0; i+1 < len(vals); i += 2 {
			rule.Error.TranslationValues[vals[i]] = vals[i+1]
		}
	}

	return rule
}
