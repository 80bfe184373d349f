package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"money-problem/coinbase"
	"money-problem/domain"
	"money-problem/exchange"
)

// rateFlag collects repeated -rate FROM:TO:RATE flags.
type rateFlag map[domain.Pair]float64

func (r rateFlag) String() string {
	parts := make([]string, 0, len(r))
	for p, rate := range r {
		parts = append(parts, fmt.Sprintf("%v:%v:%v", p.From, p.To, rate))
	}
	return strings.Join(parts, ",")
}

func (r rateFlag) Set(value string) error {
	fields := strings.Split(value, ":")
	if len(fields) != 3 {
		return fmt.Errorf("rate %q: want FROM:TO:RATE", value)
	}
	from, err := domain.ParseCurrency(fields[0])
	if err != nil {
		return err
	}
	to, err := domain.ParseCurrency(fields[1])
	if err != nil {
		return err
	}
	rate, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("rate %q: %w", value, err)
	}
	r[domain.Pair{From: from, To: to}] = rate
	return nil
}

// bankFlags are the flags shared by the commands that need exchange rates.
type bankFlags struct {
	rates   rateFlag
	live    bool
	url     string
	verbose bool
}

func (b *bankFlags) register(f *flag.FlagSet) {
	b.rates = rateFlag{}
	f.Var(b.rates, "rate", "exchange rate as FROM:TO:RATE, repeatable")
	f.BoolVar(&b.live, "live", false, "fetch rates from coinbase instead of -rate")
	f.StringVar(&b.url, "coinbase-url", coinbase.ApiUrlBase, "coinbase API base url")
	f.BoolVar(&b.verbose, "v", false, "log to stderr")
}

// service builds the exchange service described by the flags.
func (b *bankFlags) service() exchange.Service {
	logger := log.NewNopLogger()
	if b.verbose {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		logger = level.NewFilter(logger, level.AllowDebug())
	}

	banks := exchange.StaticBank(b.rates)
	if b.live {
		source := coinbase.NewService(b.url, 0)
		source = coinbase.NewLoggingService(log.With(logger, "component", "coinbase"), source)
		banks = exchange.BankFromSource(source)
	}
	return exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchange.NewService(banks))
}

// parseMoney parses AMOUNT:CURRENCY.
func parseMoney(s string) (domain.Money, error) {
	amount, code, ok := strings.Cut(s, ":")
	if !ok {
		return domain.Money{}, fmt.Errorf("money %q: want AMOUNT:CURRENCY", s)
	}
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return domain.Money{}, fmt.Errorf("money %q: %w", s, err)
	}
	c, err := domain.ParseCurrency(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("money %q: %w", s, err)
	}
	return domain.New(f, c), nil
}

func formatMoney(m domain.Money) string {
	return strconv.FormatFloat(m.Amount, 'f', -1, 64) + " " + m.Currency.String()
}
