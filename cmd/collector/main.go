package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock_dashboard/internal/app/di"
	analysisadapters "stock_dashboard/internal/feature/analysis/adapters"
	analysisusecase "stock_dashboard/internal/feature/analysis/usecase"
	collectorusecase "stock_dashboard/internal/feature/collector/usecase"
	earningsadapters "stock_dashboard/internal/feature/earnings/adapters"
	pricesusecase "stock_dashboard/internal/feature/prices/usecase"
	stocksadapters "stock_dashboard/internal/feature/stocks/adapters"
	"stock_dashboard/internal/platform/config"
	platformdb "stock_dashboard/internal/platform/db"
	"stock_dashboard/internal/platform/scheduler"
	"stock_dashboard/internal/shared/ratelimiter"
)

func main() {
	once := flag.Bool("once", false, "run a single collection and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := platformdb.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	stockRepo := stocksadapters.NewStockRepository(db)
	barRepo := di.NewBarRepository(nil, db, cfg.CacheTTL)
	earningsRepo := earningsadapters.NewEarningsRepository(db)
	snapshotRepo := analysisadapters.NewSnapshotRepository(db)

	priceUC := pricesusecase.NewPricesUsecase(barRepo)
	analysisUC := analysisusecase.NewAnalysisUsecase(stockRepo, priceUC, earningsRepo, snapshotRepo)
	limiter := ratelimiter.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	market := di.NewMarket(cfg)
	collector := collectorusecase.NewCollectorUsecase(market, stockRepo, barRepo, earningsRepo, analysisUC, limiter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collect := func(ctx context.Context) {
		tickers, err := collectionUniverse(ctx, cfg, stockRepo)
		if err != nil {
			slog.Error("failed to build ticker universe", "error", err)
			return
		}
		collector.CollectAll(ctx, tickers)
	}

	if *once {
		collect(ctx)
		return
	}

	sched := scheduler.NewScheduler(ctx, collect)
	if err := sched.Register(cfg.UpdateIntervalHours); err != nil {
		slog.Error("failed to register schedule", "error", err)
		os.Exit(1)
	}

	// Seed data immediately so the dashboard is not empty until the
	// first tick.
	sched.RunNow()
	sched.Start()
	defer sched.Stop()

	<-ctx.Done()
	slog.Info("collector shutting down")
}

// collectionUniverse is the configured seed tickers plus every stock
// already marked active in the database, deduplicated.
func collectionUniverse(ctx context.Context, cfg *config.Config, stocks interface {
	ListActiveTickers(ctx context.Context) ([]string, error)
}) ([]string, error) {
	stored, err := stocks.ListActiveTickers(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(cfg.Tickers)+len(stored))
	out := make([]string, 0, len(cfg.Tickers)+len(stored))
	for _, t := range append(append([]string{}, cfg.Tickers...), stored...) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}
