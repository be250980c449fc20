package roman

// ToDecimal returns the value of a validated numeral.
// A symbol followed by a larger one is read as a pair worth their difference;
// every other symbol adds its own value. The result for unvalidated input is
// unspecified.
func ToDecimal(s string) int {
	total := 0
	for i := 0; i < len(s); {
		cur := value(rune(s[i]))
		if i+1 < len(s) {
			if next := value(rune(s[i+1])); cur < next {
				total += next - cur
				i += 2
				continue
			}
		}
		total += cur
		i++
	}
	return total
}

// Parse normalizes and validates raw, returning the canonical numeral and its value.
func Parse(raw string) (string, int, error) {
	s := Normalize(raw)
	if err := Validate(s); err != nil {
		return "", 0, err
	}
	return s, ToDecimal(s), nil
}
