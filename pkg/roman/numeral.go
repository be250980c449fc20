package roman

// Numeral holds a validated numeral in canonical form together with its
// decimal value. The zero value is empty. The two representations only ever
// change together, through Set.
type Numeral struct {
	roman   string
	decimal int
}

// New creates a Numeral from raw text.
func New(raw string) (*Numeral, error) {
	n := &Numeral{}
	if err := n.Set(raw); err != nil {
		return nil, err
	}
	return n, nil
}

// Set normalizes, validates and converts raw, then replaces the stored value.
// On error the previous value is kept.
func (n *Numeral) Set(raw string) error {
	s, d, err := Parse(raw)
	if err != nil {
		return err
	}
	n.roman, n.decimal = s, d
	return nil
}

// Roman returns the canonical numeral.
func (n *Numeral) Roman() string { return n.roman }

// Decimal returns the decimal value.
func (n *Numeral) Decimal() int { return n.decimal }

// IsZero reports whether no value has been set.
func (n *Numeral) IsZero() bool { return n.roman == "" }

func (n *Numeral) String() string { return n.roman }

// MarshalText implements encoding.TextMarshaler.
func (n Numeral) MarshalText() ([]byte, error) {
	return []byte(n.roman), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text goes through Set,
// so it may be lowercase or padded with whitespace.
func (n *Numeral) UnmarshalText(text []byte) error {
	return n.Set(string(text))
}
