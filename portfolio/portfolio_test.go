package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"money-problem/bank"
	"money-problem/domain"
)

func newBank() *bank.Bank {
	b := bank.WithExchangeRate(domain.EUR, domain.USD, 1.2)
	b.AddExchangeRate(domain.USD, domain.KRW, 1100)
	return b
}

func TestPortfolio_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.Money
		to      domain.Currency
		want    domain.Money
	}{
		{
			"5 USD + 10 EUR = 17 USD",
			[]domain.Money{domain.Dollars(5), domain.Euros(10)},
			domain.USD,
			domain.Dollars(17),
		},
		{
			"1 USD + 1100 KRW = 2200 KRW",
			[]domain.Money{domain.Dollars(1), domain.KoreanWons(1100)},
			domain.KRW,
			domain.KoreanWons(2200),
		},
		{
			"5 USD + 10 EUR + 4 EUR = 21.8 USD",
			[]domain.Money{domain.Dollars(5), domain.Euros(10), domain.Euros(4)},
			domain.USD,
			domain.Dollars(21.8),
		},
		{
			"5 USD + 10 USD = 15 USD",
			[]domain.Money{domain.Dollars(5), domain.Dollars(10)},
			domain.USD,
			domain.Dollars(15),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.entries...)

			got, err := p.Evaluate(newBank(), tt.to)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPortfolio_EvaluateEmpty(t *testing.T) {
	var p Portfolio
	for _, c := range domain.Currencies() {
		got, err := p.Evaluate(bank.New(), c)
		require.NoError(t, err)
		assert.Equal(t, domain.New(0, c), got)
	}
}

func TestPortfolio_EvaluateMissingRates(t *testing.T) {
	p := New(domain.Euros(1), domain.Dollars(1), domain.KoreanWons(1))

	_, err := p.Evaluate(bank.WithExchangeRate(domain.USD, domain.KRW, 1100), domain.EUR)

	var missing *MissingExchangeRatesError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Missing exchange rate(s): [USD->EUR],[KRW->EUR]", err.Error())
	assert.Equal(t, []domain.Pair{
		{From: domain.USD, To: domain.EUR},
		{From: domain.KRW, To: domain.EUR},
	}, missing.Missing)
}

// USD->EUR resolves through the inverse of EUR->USD, so only KRW is reported.
// A table without inverse lookup would also report [USD->EUR].
func TestPortfolio_EvaluateMissingRatesWithInverse(t *testing.T) {
	p := New(domain.Euros(1), domain.Dollars(1), domain.KoreanWons(1))

	got, err := p.Evaluate(newBank(), domain.EUR)

	assert.Equal(t, domain.Money{}, got)
	assert.EqualError(t, err, "Missing exchange rate(s): [KRW->EUR]")
}

func TestPortfolio_EvaluateListsEveryFailure(t *testing.T) {
	p := New(domain.KoreanWons(1), domain.Euros(2), domain.KoreanWons(3), domain.Dollars(4), domain.KoreanWons(5))

	_, err := p.Evaluate(newBank(), domain.EUR)

	var missing *MissingExchangeRatesError
	require.True(t, errors.As(err, &missing))
	assert.Len(t, missing.Missing, 3)
	assert.Equal(t, "Missing exchange rate(s): [KRW->EUR],[KRW->EUR],[KRW->EUR]", err.Error())
}

func TestPortfolio_EvaluateOrderIndependent(t *testing.T) {
	forward := New(domain.Dollars(1), domain.KoreanWons(1100), domain.Dollars(3))
	backward := New(domain.Dollars(3), domain.KoreanWons(1100), domain.Dollars(1))

	a, err := forward.Evaluate(newBank(), domain.KRW)
	require.NoError(t, err)
	b, err := backward.Evaluate(newBank(), domain.KRW)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, domain.KoreanWons(5500), a)
}

func TestPortfolio_EvaluateOrderIndependentFailures(t *testing.T) {
	usdToKrw := bank.WithExchangeRate(domain.USD, domain.KRW, 1100)
	forward := New(domain.KoreanWons(1), domain.Euros(1), domain.Dollars(1))
	backward := New(domain.Dollars(1), domain.Euros(1), domain.KoreanWons(1))

	_, errForward := forward.Evaluate(usdToKrw, domain.EUR)
	_, errBackward := backward.Evaluate(usdToKrw, domain.EUR)

	var a, b *MissingExchangeRatesError
	require.True(t, errors.As(errForward, &a))
	require.True(t, errors.As(errBackward, &b))
	assert.ElementsMatch(t, a.Missing, b.Missing)
	assert.EqualError(t, errForward, "Missing exchange rate(s): [KRW->EUR],[USD->EUR]")
	assert.EqualError(t, errBackward, "Missing exchange rate(s): [USD->EUR],[KRW->EUR]")
}

// converterFunc adapts a function to a Converter.
type converterFunc func(m domain.Money, to domain.Currency) (domain.Money, error)

func (f converterFunc) Convert(m domain.Money, to domain.Currency) (domain.Money, error) {
	return f(m, to)
}

func TestPortfolio_EvaluateWrongCurrencyResult(t *testing.T) {
	// returns the entry untouched instead of converting it
	lazy := converterFunc(func(m domain.Money, _ domain.Currency) (domain.Money, error) { return m, nil })
	p := New(domain.Dollars(5), domain.Euros(10))

	var got domain.Money
	var err error
	assert.NotPanics(t, func() { got, err = p.Evaluate(lazy, domain.USD) })

	assert.Equal(t, domain.Money{}, got)
	assert.EqualError(t, err, "Missing exchange rate(s): [EUR->USD]")
}

func TestPortfolio_EvaluateAgainstDifferentBanks(t *testing.T) {
	p := New(domain.Euros(10))

	first, err := p.Evaluate(bank.WithExchangeRate(domain.EUR, domain.USD, 1.2), domain.USD)
	require.NoError(t, err)
	second, err := p.Evaluate(bank.WithExchangeRate(domain.EUR, domain.USD, 1.5), domain.USD)
	require.NoError(t, err)

	assert.Equal(t, domain.Dollars(12), first)
	assert.Equal(t, domain.Dollars(15), second)
}

func TestPortfolio_Entries(t *testing.T) {
	p := New(domain.Dollars(5))
	p.Add(domain.Euros(10))

	entries := p.Entries()
	entries[0] = domain.KoreanWons(1)

	assert.Equal(t, []domain.Money{domain.Dollars(5), domain.Euros(10)}, p.Entries())
}
