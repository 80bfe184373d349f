package exchange

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"money-problem/bank"
	"money-problem/coinbase"
	"money-problem/domain"
)

// BankFunc provides the rate table used for one call. Every call must
// return a Bank that is not shared with other goroutines.
type BankFunc func(ctx context.Context) (*bank.Bank, error)

// LoadBank fetches the rates of every base currency concurrently and
// returns a new Bank holding them. Rates to currencies outside the
// known set are ignored.
func LoadBank(ctx context.Context, source coinbase.Service, currencies []domain.Currency) (*bank.Bank, error) {
	fetched := make([]domain.Rates, len(currencies))

	g, ctx := errgroup.WithContext(ctx)
	for i, base := range currencies {
		g.Go(func() error {
			rates, err := source.ExchangeRates(ctx, base)
			if err != nil {
				return fmt.Errorf("load bank [%v]: %w", base, err)
			}
			fetched[i] = rates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := bank.New()
	for i, base := range currencies {
		for quote, rate := range fetched[i] {
			if quote == base || !quote.Valid() {
				continue
			}
			b.AddExchangeRate(base, quote, rate)
		}
	}
	return b, nil
}

// BankFromSource returns a BankFunc that loads every known currency from source.
func BankFromSource(source coinbase.Service) BankFunc {
	return func(ctx context.Context) (*bank.Bank, error) {
		return LoadBank(ctx, source, domain.Currencies())
	}
}

// StaticBank returns a BankFunc that serves copies of a fixed set of rates.
func StaticBank(rates map[domain.Pair]float64) BankFunc {
	return func(context.Context) (*bank.Bank, error) {
		b := bank.New()
		for pair, rate := range rates {
			b.AddExchangeRate(pair.From, pair.To, rate)
		}
		return b, nil
	}
}
