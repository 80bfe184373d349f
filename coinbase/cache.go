package coinbase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"money-problem/domain"
)

// cachingService decorates a coinbase.Service with a cache of exchange rates.
// The cachingService is concurrency safe and will periodically refresh cached values.
type cachingService struct {
	// ctx bounds the periodic refreshers
	ctx context.Context

	// next the service being decorated with a cache
	next Service

	// cache the cache of rates
	cache map[domain.Currency]domain.Rates

	// updateFrequency how often to refresh cached values
	updateFrequency time.Duration

	// lock synchronizes access to cache to make it concurrency safe
	lock sync.RWMutex

	logger log.Logger
}

// NewCachingService returns a new caching Service.
// Refreshers run until ctx is done, at which point their entries are evicted.
func NewCachingService(ctx context.Context, updateFrequency time.Duration, logger log.Logger, s Service) Service {
	return &cachingService{
		ctx:             ctx,
		next:            s,
		cache:           map[domain.Currency]domain.Rates{},
		updateFrequency: updateFrequency,
		logger:          logger,
	}
}

// ExchangeRates looks up exchange rates and caches the results
func (s *cachingService) ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Rates, error) {
	s.lock.RLock()
	rates, ok := s.cache[currency]
	s.lock.RUnlock()

	if ok {
		return rates, nil
	}

	// Concurrent misses on the same currency may each fetch; only the first
	// one to store an entry starts the refresher.
	rates, firstTime, err := s.refreshNow(ctx, currency)
	if err != nil {
		return nil, fmt.Errorf("refreshing cache [%v]: %w", currency, err)
	}
	if firstTime {
		level.Debug(s.logger).Log("msg", "scheduling periodic refresh", "currency", currency)
		go s.refreshPeriodically(currency)
	}
	return rates, nil
}

// refreshNow refreshes a cached entry immediately
func (s *cachingService) refreshNow(ctx context.Context, currency domain.Currency) (domain.Rates, bool, error) {
	rates, err := s.next.ExchangeRates(ctx, currency)
	if err != nil {
		return nil, false, fmt.Errorf("refresh [%v]: %w", currency, err)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	_, ok := s.cache[currency]
	s.cache[currency] = rates
	return rates, !ok, nil
}

// refreshPeriodically refreshes a cached entry on a given schedule.
// This is expected to be called from a go-routine for each currency.
func (s *cachingService) refreshPeriodically(currency domain.Currency) {
	ticker := time.NewTicker(s.updateFrequency)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_, _, err := s.refreshNow(s.ctx, currency)
			if err != nil {
				// keep the stale entry, the error may be transient
				level.Warn(s.logger).Log("msg", "periodic refresh failed", "currency", currency, "err", err)
			}
		case <-s.ctx.Done():
			s.uncache(currency)
			return
		}
	}
}

// uncache safely removes currency from the cache
func (s *cachingService) uncache(currency domain.Currency) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.cache, currency)
}
