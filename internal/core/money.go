// Package core holds the domain model and the balance/report arithmetic.
//
// Amounts are stored as exact cents (int64). Parsing and percentage math go
// through shopspring/decimal so no floating point ever touches a balance.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact monetary amount in cents.
type Money struct {
	Cents int64
}

var centFactor = decimal.NewFromInt(100)

// ParseAmount converts a decimal string (e.g. "75.25") into Money.
// At most two fractional digits are accepted; anything finer is rejected
// rather than silently rounded.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidInput
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidInput
	}
	cents := d.Mul(centFactor)
	if !cents.IsInteger() {
		return Money{}, ErrInvalidInput
	}
	return Money{Cents: cents.IntPart()}, nil
}

// ParsePositiveAmount is ParseAmount restricted to strictly positive values,
// the precondition for transaction and budget amounts.
func ParsePositiveAmount(s string) (Money, error) {
	m, err := ParseAmount(s)
	if err != nil {
		return Money{}, err
	}
	if m.Cents <= 0 {
		return Money{}, ErrInvalidInput
	}
	return m, nil
}

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }
func (m Money) Sub(o Money) Money { return Money{Cents: m.Cents - o.Cents} }
func (m Money) Neg() Money        { return Money{Cents: -m.Cents} }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.Cents > 0 }

// Decimal returns the amount as an exact decimal with two fractional digits.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// String renders the amount as a plain decimal, e.g. "-75.25".
func (m Money) String() string {
	c := m.Cents
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON emits the amount as a JSON number with fixed two-digit scale.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
// Negative values are allowed here; operation-level validation decides
// whether they are acceptable (account opening balances may be negative,
// transaction amounts may not).
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
