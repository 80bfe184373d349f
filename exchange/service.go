package exchange

import (
	"context"
	"fmt"

	"money-problem/domain"
	"money-problem/portfolio"
)

// Service converts money and evaluates portfolios against current rates.
type Service interface {
	Convert(ctx context.Context, m domain.Money, to domain.Currency) (domain.Exchanged, error)
	Evaluate(ctx context.Context, entries []domain.Money, to domain.Currency) (domain.Money, error)
}

// service builds a fresh Bank for each call
type service struct {
	// banks provides the rate table
	banks BankFunc
}

// NewService constructs a valid Service
func NewService(banks BankFunc) Service {
	return &service{
		banks: banks,
	}
}

// Convert converts m into to and reports the rate that was applied.
// A missing rate is reported as a *bank.NoRateFoundError.
func (s *service) Convert(ctx context.Context, m domain.Money, to domain.Currency) (domain.Exchanged, error) {
	b, err := s.banks(ctx)
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert from [%v]: %w", m.Currency, err)
	}

	converted, err := b.Convert(m, to)
	if err != nil {
		return domain.Exchanged{}, err
	}
	rate, _ := b.Rate(m.Currency, to)

	return domain.Exchanged{Rate: rate, Money: converted}, nil
}

// Evaluate sums entries in the to currency.
// Missing rates are reported as a *portfolio.MissingExchangeRatesError.
func (s *service) Evaluate(ctx context.Context, entries []domain.Money, to domain.Currency) (domain.Money, error) {
	b, err := s.banks(ctx)
	if err != nil {
		return domain.Money{}, fmt.Errorf("evaluate in [%v]: %w", to, err)
	}
	return portfolio.New(entries...).Evaluate(b, to)
}
