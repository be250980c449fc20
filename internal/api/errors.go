package api

import "errors"

var ErrNilTranslator = errors.New("api: translator is required")
