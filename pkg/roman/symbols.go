package roman

const (
	// MinValue is the smallest value any accepted numeral decodes to.
	MinValue = 1
	// MaxValue is the value of MMMCMXCIX, the largest canonical numeral.
	MaxValue = 3999
)

// Symbols lists the valid numeral symbols in ascending order of value.
const Symbols = "IVXLCDM"

// value returns the decimal value of a symbol, or 0 for anything else.
func value(r rune) int {
	switch r {
	case 'I':
		return 1
	case 'V':
		return 5
	case 'X':
		return 10
	case 'L':
		return 50
	case 'C':
		return 100
	case 'D':
		return 500
	case 'M':
		return 1000
	default:
		return 0
	}
}

// maxRun returns how many times a symbol may appear consecutively.
func maxRun(b byte) int {
	switch b {
	case 'V', 'L', 'D':
		return 1
	default:
		return 3
	}
}

var subtractivePairs = map[string]struct{}{
	"IV": {},
	"IX": {},
	"XL": {},
	"XC": {},
	"CD": {},
	"CM": {},
}

// IsSymbol reports whether r is one of I V X L C D M.
func IsSymbol(r rune) bool {
	return value(r) != 0
}

// IsSubtractivePair reports whether pair is one of IV, IX, XL, XC, CD, CM.
func IsSubtractivePair(pair string) bool {
	_, ok := subtractivePairs[pair]
	return ok
}
