package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"money-problem/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, m domain.Money, to domain.Currency) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"money", m,
			"to", to,
			"rate", ex.Rate,
			"converted", ex.Money,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, m, to)
}

func (s *loggingService) Evaluate(ctx context.Context, entries []domain.Money, to domain.Currency) (total domain.Money, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "evaluate",
			"entries", len(entries),
			"to", to,
			"total", total,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Evaluate(ctx, entries, to)
}
