// Package core holds the entity types shared by the stores, the exporters
// and the HTTP layer.
//
// Monetary amounts are stored as integer cents. Summary arithmetic is exact
// that way; converting to a decimal string happens only at the edges.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is an amount in cents.
type Money struct {
	Cents int64
}

// ParseDecimal converts a decimal string to Money with half-up rounding on
// the third decimal place. Both dot and comma separators are accepted, and
// so are negative and zero amounts: the stores take what they are given,
// range checks belong to the form layer.
//
// Examples:
//
//	ParseDecimal("12.34")  -> 1234 cents
//	ParseDecimal("12,345") -> 1235 cents (rounds up)
//	ParseDecimal("-5")     -> -500 cents
func ParseDecimal(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, ",", ".")

	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, fmt.Errorf("invalid amount %q", s)
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return Money{}, fmt.Errorf("amount %q out of range", s)
	}

	// First two fractional digits are cents, the third rounds half-up.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return Money{Cents: cents}, nil
}

// String formats the amount as a plain decimal with two fraction digits,
// e.g. "125.50" or "-4.05".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Float64 returns the amount in currency units for display-only math.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100.0
}

// MarshalJSON renders Money as a JSON number in currency units ("125.50").
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*m = Money{}
		return nil
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
