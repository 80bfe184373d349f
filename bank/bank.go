package bank

import (
	"errors"
	"fmt"

	"money-problem/domain"
)

// ErrNoRateFound is matched by every NoRateFoundError.
var ErrNoRateFound = errors.New("no exchange rate found")

// NoRateFoundError reports a conversion for which neither the direct
// nor the reverse rate is known. Pair is the requested direction.
type NoRateFoundError struct {
	Pair domain.Pair
}

func (e *NoRateFoundError) Error() string {
	return fmt.Sprintf("%v: %v", ErrNoRateFound, e.Pair)
}

func (e *NoRateFoundError) Unwrap() error { return ErrNoRateFound }

// Bank is a table of directed exchange rates: an entry (from, to) = r
// means 1 from == r to. A Bank is not safe for concurrent use.
type Bank struct {
	rates map[domain.Pair]float64
}

// New returns an empty Bank.
func New() *Bank {
	return &Bank{rates: map[domain.Pair]float64{}}
}

// WithExchangeRate returns a Bank seeded with a single directed rate.
func WithExchangeRate(from, to domain.Currency, rate float64) *Bank {
	b := New()
	b.AddExchangeRate(from, to, rate)
	return b
}

// AddExchangeRate stores, or replaces, the rate from -> to.
// The reverse direction is derived on lookup and never stored.
func (b *Bank) AddExchangeRate(from, to domain.Currency, rate float64) {
	if b.rates == nil {
		b.rates = map[domain.Pair]float64{}
	}
	b.rates[domain.Pair{From: from, To: to}] = rate
}

// Len returns the number of stored directed rates.
func (b *Bank) Len() int {
	return len(b.rates)
}

// Rate returns the factor to convert from into to: 1 for the same currency,
// the stored rate, or the inverse of the stored reverse rate.
func (b *Bank) Rate(from, to domain.Currency) (float64, bool) {
	if from == to {
		return 1, true
	}
	pair := domain.Pair{From: from, To: to}
	if rate, ok := b.rates[pair]; ok {
		return rate, true
	}
	// derived inverse: USD->EUR resolves from a stored EUR->USD
	if rate, ok := b.rates[pair.Reversed()]; ok {
		return 1 / rate, true
	}
	return 0, false
}

// Convert converts m into the to currency.
// It fails with a *NoRateFoundError when no rate is known in either direction.
func (b *Bank) Convert(m domain.Money, to domain.Currency) (domain.Money, error) {
	if m.Currency == to {
		return m, nil
	}
	rate, ok := b.Rate(m.Currency, to)
	if !ok {
		return domain.Money{}, &NoRateFoundError{Pair: domain.Pair{From: m.Currency, To: to}}
	}
	return domain.New(m.Amount*rate, to), nil
}
