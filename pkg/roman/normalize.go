package roman

import "github.com/dmitrymomot/deromanizer/pkg/sanitizer"

var normalize = sanitizer.Compose(
	sanitizer.RemoveWhitespace,
	sanitizer.ToUpperASCII,
)

// Normalize removes all whitespace from raw and uppercases the ASCII letters
// that are left. Other runes pass through unchanged so Validate can name them;
// a dotless i stays a dotless i rather than becoming I.
// Normalize is idempotent.
func Normalize(raw string) string {
	return normalize(raw)
}
