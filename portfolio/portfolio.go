package portfolio

import (
	"strings"

	"money-problem/domain"
)

// Converter converts money into another currency.
// *bank.Bank is the usual implementation. A result in any currency other
// than the requested one counts as a failed conversion.
type Converter interface {
	Convert(m domain.Money, to domain.Currency) (domain.Money, error)
}

// MissingExchangeRatesError lists every pair that could not be converted
// during one evaluation, in the order they were met.
type MissingExchangeRatesError struct {
	Missing []domain.Pair
}

func (e *MissingExchangeRatesError) Error() string {
	pairs := make([]string, len(e.Missing))
	for i, p := range e.Missing {
		pairs[i] = "[" + p.String() + "]"
	}
	return "Missing exchange rate(s): " + strings.Join(pairs, ",")
}

// Portfolio is an ordered collection of money in any currency.
// The zero value is an empty portfolio ready to use.
type Portfolio struct {
	entries []domain.Money
}

// New returns a portfolio holding entries.
func New(entries ...domain.Money) *Portfolio {
	p := &Portfolio{}
	for _, m := range entries {
		p.Add(m)
	}
	return p
}

// Add appends m to the portfolio.
func (p *Portfolio) Add(m domain.Money) {
	p.entries = append(p.entries, m)
}

// Entries returns a copy of the portfolio entries in insertion order.
func (p *Portfolio) Entries() []domain.Money {
	return append([]domain.Money(nil), p.entries...)
}

// Evaluate sums every entry converted into the to currency.
//
// All entries are converted even after a failure so that the returned
// *MissingExchangeRatesError names every missing pair. On failure no
// partial total is returned.
func (p *Portfolio) Evaluate(conv Converter, to domain.Currency) (domain.Money, error) {
	total := domain.New(0, to)
	var missing []domain.Pair

	for _, m := range p.entries {
		converted, err := conv.Convert(m, to)
		if err != nil || converted.Currency != to {
			missing = append(missing, domain.Pair{From: m.Currency, To: to})
			continue
		}
		total = total.Add(converted)
	}

	if len(missing) > 0 {
		return domain.Money{}, &MissingExchangeRatesError{Missing: missing}
	}
	return total, nil
}
