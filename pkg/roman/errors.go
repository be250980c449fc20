package roman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input has no non-whitespace content.
	ErrEmptyInput = errors.New("empty input; please enter a Roman numeral")

	// ErrInvalidSymbol is returned when a rune is not one of I V X L C D M.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrExcessiveRepetition is returned when a run of identical symbols is too long.
	ErrExcessiveRepetition = errors.New("too many repeated symbols in sequence")

	// ErrInvalidSubtractivePair is returned when a smaller symbol precedes a larger
	// one outside of IV, IX, XL, XC, CD and CM.
	ErrInvalidSubtractivePair = errors.New("invalid subtractive pair")
)

// ValidationError describes a grammar violation.
// Kind is one of the package sentinels; Symbol and Pair are set only for the
// kinds that name an offending symbol or pair.
type ValidationError struct {
	Kind   error
	Symbol rune
	Pair   string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrInvalidSymbol:
		return fmt.Sprintf("invalid symbol %q; valid symbols are I V X L C D M", e.Symbol)
	case ErrInvalidSubtractivePair:
		return fmt.Sprintf("invalid subtractive pair %q", e.Pair)
	}
	return e.Kind.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Code returns a stable machine-readable identifier for the error kind.
func (e *ValidationError) Code() string {
	switch e.Kind {
	case ErrEmptyInput:
		return "empty_input"
	case ErrInvalidSymbol:
		return "invalid_symbol"
	case ErrExcessiveRepetition:
		return "excessive_repetition"
	case ErrInvalidSubtractivePair:
		return "invalid_subtractive_pair"
	}
	return "invalid_numeral"
}

// TranslationKey returns the message catalog key for the error kind.
func (e *ValidationError) TranslationKey() string {
	return "roman." + e.Code()
}

// TranslationValues returns named placeholder values as key, value pairs.
func (e *ValidationError) TranslationValues() []string {
	switch e.Kind {
	case ErrInvalidSymbol:
		return []string{"symbol", string(e.Symbol)}
	case ErrInvalidSubtractivePair:
		return []string{"pair", e.Pair}
	}
	return nil
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err is a grammar violation.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
