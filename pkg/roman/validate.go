package roman

// rule checks one grammar property of a normalized numeral.
type rule func(s string) error

// rules run in order; the first failure is reported.
var rules = []rule{
	requireNonEmpty,
	requireSymbols,
	limitRepetition,
	restrictSubtraction,
}

// Validate reports whether s, already normalized, is a legal numeral.
// It returns a *ValidationError for the first rule that fails, or nil.
func Validate(s string) error {
	for _, check := range rules {
		if err := check(s); err != nil {
			return err
		}
	}
	return nil
}

func requireNonEmpty(s string) error {
	if s == "" {
		return &ValidationError{Kind: ErrEmptyInput}
	}
	return nil
}

func requireSymbols(s string) error {
	for _, r := range s {
		if !IsSymbol(r) {
			return &ValidationError{Kind: ErrInvalidSymbol, Symbol: r}
		}
	}
	return nil
}

// limitRepetition relies on requireSymbols having run, so s is ASCII.
func limitRepetition(s string) error {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if run > maxRun(s[i]) {
			return &ValidationError{Kind: ErrExcessiveRepetition}
		}
	}
	return nil
}

func restrictSubtraction(s string) error {
	for i := 0; i+1 < len(s); i++ {
		if value(rune(s[i])) >= value(rune(s[i+1])) {
			continue
		}
		if pair := s[i : i+2]; !IsSubtractivePair(pair) {
			return &ValidationError{Kind: ErrInvalidSubtractivePair, Pair: pair}
		}
	}
	return nil
}
