package coinbase

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"money-problem/domain"
)

// response is the body of GET /exchange-rates
type response struct {
	Data struct {
		Currency string            `json:"currency"`
		Rates    map[string]string `json:"rates"` // maps currency codes to rates
	} `json:"data"`
}

// decodeRates reads an exchange-rates response and keeps the currencies we know about.
func decodeRates(r io.Reader) (domain.Rates, error) {
	var resp response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	rates := domain.Rates{}
	for code, v := range resp.Data.Rates {
		currency, err := domain.ParseCurrency(code)
		if err != nil {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("bad rate value [%v]: %w", code, err)
		}
		rates[currency] = f
	}
	return rates, nil
}
