package domain

import (
	"math"
	"strconv"
)

// Money is an amount expressed in a currency. Money is a value: operations
// return a new Money and never modify the receiver.
type Money struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// New builds a Money from an amount and its currency.
func New(amount float64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

func Dollars(amount float64) Money    { return New(amount, USD) }
func Euros(amount float64) Money      { return New(amount, EUR) }
func KoreanWons(amount float64) Money { return New(amount, KRW) }

// Add sums two amounts of the same currency.
// Adding different currencies is a programming error and panics;
// cross currency sums go through a conversion first.
func (m Money) Add(n Money) Money {
	if m.Currency != n.Currency {
		panic("currency mismatch: " + m.Currency.String() + " != " + n.Currency.String())
	}
	return Money{Amount: m.Amount + n.Amount, Currency: m.Currency}
}

// Equal reports whether both amount and currency are exactly equal.
func (m Money) Equal(n Money) bool {
	return m.Amount == n.Amount && m.Currency == n.Currency
}

// String formats the money with its currency symbol, rounded to the currency's minor unit.
// Amounts whose minor units do not fit an int64 are printed as plain digits and code.
func (m Money) String() string {
	cur := m.Currency.info()
	if cur == nil {
		return m.Currency.String()
	}
	minor := math.Round(m.Amount * math.Pow10(cur.Fraction))
	if math.IsNaN(minor) || minor >= math.MaxInt64 || minor < math.MinInt64 {
		return strconv.FormatFloat(m.Amount, 'f', -1, 64) + " " + m.Currency.String()
	}
	return cur.Formatter().Format(int64(minor))
}
