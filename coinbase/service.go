package coinbase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"money-problem/domain"
)

const ApiUrlBase = "https://api.coinbase.com/v2"

// Service looks up the exchange rates of a base currency.
type Service interface {
	ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Rates, error)
}

// service coinbase REST API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a coinbase Service against url.
// An empty url uses ApiUrlBase, a zero timeout defaults to 5s.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &service{
		url: url,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// ExchangeRates loads the current rates from currency to every other known currency.
// Coinbase rates change every minute.
func (s *service) ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Rates, error) {
	url := fmt.Sprintf("%v/exchange-rates?currency=%v", s.url, currency)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http get [%v]: unexpected status %v", currency, httpResponse.Status)
	}

	rates, err := decodeRates(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("exchange rates [%v]: %w", currency, err)
	}
	return rates, nil
}
