package prompt

import "errors"

var (
	ErrRead          = errors.New("prompt: failed to read input")
	ErrNilTranslator = errors.New("prompt: translator is required")
)
