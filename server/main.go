package main

import (
	"context"
	nhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"money-problem/coinbase"
	"money-problem/config"
	"money-problem/exchange"
	"money-problem/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(cfg.LogLevel, level.InfoValue())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coinbaseService := coinbase.NewService(cfg.CoinbaseURL, cfg.CoinbaseTimeout)
	coinbaseService = coinbase.NewLoggingService(log.With(logger, "component", "coinbase_rest"), coinbaseService)
	coinbaseService = coinbase.NewCachingService(ctx, cfg.RefreshInterval, log.With(logger, "component", "coinbase_cache"), coinbaseService)

	exchangeService := exchange.NewService(exchange.BankFromSource(coinbaseService))
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	server := &nhttp.Server{
		Addr:              cfg.Addr,
		Handler:           http.NewServer(exchangeService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	level.Info(logger).Log("msg", "listening", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != nhttp.ErrServerClosed {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
