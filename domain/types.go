package domain

// Rates maps a quote currency to the rate from a base currency:
// 1 base == Rates[quote] quote.
type Rates map[Currency]float64

// Exchanged is the outcome of a single conversion.
type Exchanged struct {
	Rate  float64
	Money Money
}

// Pair is a directed currency pair, From is converted into To.
type Pair struct {
	From Currency
	To   Currency
}

// String returns the pair as FROM->TO.
func (p Pair) String() string {
	return p.From.String() + "->" + p.To.String()
}

// Reversed returns the pair in the opposite direction.
func (p Pair) Reversed() Pair {
	return Pair{From: p.To, To: p.From}
}
