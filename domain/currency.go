package domain

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is one of the currencies the system knows how to handle.
// The set is closed: adding a currency is a code change.
type Currency int

const (
	USD Currency = iota + 1
	EUR
	KRW
)

var codes = map[Currency]string{
	USD: "USD",
	EUR: "EUR",
	KRW: "KRW",
}

// Currencies lists every known currency in declaration order.
func Currencies() []Currency {
	return []Currency{USD, EUR, KRW}
}

// ParseCurrency returns the Currency for an ISO code, ignoring case.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for c, iso := range codes {
		if iso == code {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown currency: %q", code)
}

// String returns the ISO code of the currency.
func (c Currency) String() string {
	if code, ok := codes[c]; ok {
		return code
	}
	return fmt.Sprintf("Currency(%d)", int(c))
}

// Valid reports whether c belongs to the known set.
func (c Currency) Valid() bool {
	_, ok := codes[c]
	return ok
}

// info returns the ISO metadata (symbol, fraction digits) of the currency.
func (c Currency) info() *money.Currency {
	return money.GetCurrency(c.String())
}

func (c Currency) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal currency: %v", c)
	}
	return []byte(c.String()), nil
}

func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
