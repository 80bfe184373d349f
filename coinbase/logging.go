package coinbase

import (
	"context"
	"strings"
	"time"

	"github.com/go-kit/log"
	"money-problem/domain"
)

// loggingService decorates a coinbase.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRates(ctx context.Context, currency domain.Currency) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "exchange_rates",
			"currency", currency,
			"quotes", quotes(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRates(ctx, currency)
}

// quotes lists the quote currencies of rates in declaration order, e.g. "EUR,KRW".
func quotes(rates domain.Rates) string {
	var codes []string
	for _, c := range domain.Currencies() {
		if _, ok := rates[c]; ok {
			codes = append(codes, c.String())
		}
	}
	return strings.Join(codes, ",")
}
