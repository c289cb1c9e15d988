package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"

	"github.com/a2-coder/dvmm/internal/domain"
)

const opMoneyParse = "format.money.parse"

var symbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Money formats integer minor-unit amounts as display strings for one currency
// and parses them back. The number of decimals is the currency's standard
// scale (2 for USD, 0 for JPY).
type Money struct {
	unit   currency.Unit
	symbol string
	scale  int
}

// NewMoney builds a Money for an ISO 4217 code. Currencies without a known
// symbol are prefixed with their code, e.g. "CHF 12.50".
func NewMoney(code string) (Money, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return Money{}, &domain.OpError{
			Op:   "format.money.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("currency %q: %w", code, err),
		}
	}

	scale, _ := currency.Standard.Rounding(unit)
	sym, ok := symbols[unit]
	if !ok {
		sym = unit.String() + " "
	}
	return Money{unit: unit, symbol: sym, scale: scale}, nil
}

// MustMoney is NewMoney for codes known at compile time.
func MustMoney(code string) Money {
	m, err := NewMoney(code)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Code() string  { return m.unit.String() }
func (m Money) Symbol() string { return m.symbol }
func (m Money) Scale() int     { return m.scale }

// Format renders minor units, e.g. 1999 -> "$19.99" and -5 -> "-$0.05".
func (m Money) Format(minor int64) string {
	sign := ""
	abs := uint64(minor)
	if minor < 0 {
		sign = "-"
		abs = uint64(-(minor + 1)) + 1
	}

	if m.scale == 0 {
		return fmt.Sprintf("%s%s%d", sign, m.symbol, abs)
	}

	pow := uint64(1)
	for i := 0; i < m.scale; i++ {
		pow *= 10
	}
	return fmt.Sprintf("%s%s%d.%0*d", sign, m.symbol, abs/pow, m.scale, abs%pow)
}

// Parse is the inverse of Format and accepts only strings Format produces:
// the symbol and the exact number of decimals are required, and surrounding
// whitespace, leading zeros and a negative zero are rejected.
func (m Money) Parse(field, s string) (int64, error) {
	rest := s
	sign := ""
	if strings.HasPrefix(rest, "-") {
		sign = "-"
		rest = rest[1:]
	}

	if !strings.HasPrefix(rest, m.symbol) {
		return 0, domain.FormatMismatch(opMoneyParse, field, fmt.Errorf("%q: missing currency symbol %q", s, m.symbol))
	}
	rest = strings.TrimPrefix(rest, m.symbol)

	major, frac := rest, ""
	if m.scale > 0 {
		var ok bool
		major, frac, ok = strings.Cut(rest, ".")
		if !ok || len(frac) != m.scale {
			return 0, domain.FormatMismatch(opMoneyParse, field, fmt.Errorf("%q: expected exactly %d decimal places", s, m.scale))
		}
	}
	if !isDigits(major) || (m.scale > 0 && !isDigits(frac)) {
		return 0, domain.FormatMismatch(opMoneyParse, field, fmt.Errorf("%q: not a number", s))
	}

	if len(major) > 1 && major[0] == '0' {
		return 0, domain.FormatMismatch(opMoneyParse, field, fmt.Errorf("%q: leading zeros", s))
	}

	n, err := strconv.ParseInt(sign+major+frac, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.FormatMismatch(opMoneyParse, field, fmt.Errorf("%q: amount out of range", s))
		}
		return 0, domain.FormatMismatch(opMoneyParse, field, err)
	}
	if sign != "" && n == 0 {
		return 0, domain.FormatMismatch(opMoneyParse, field, fmt.Errorf("%q: negative zero", s))
	}
	return n, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
