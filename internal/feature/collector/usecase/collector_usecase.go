// Package usecase implements the data-collection pipeline: fetch stock
// metadata, price history, and earnings from the market-data API, persist
// them, and refresh the derived indicator snapshots.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	earningsentity "stock_dashboard/internal/feature/earnings/domain/entity"
	pricesentity "stock_dashboard/internal/feature/prices/domain/entity"
	stocksentity "stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/shared/ratelimiter"
)

const (
	// fetchOutputSize is how many daily bars one collection fetches per
	// ticker; enough for the 52-week window plus the ma50 warmup.
	fetchOutputSize = 400

	// baselineSearchDays bounds the search for the first trading day on
	// or after an earnings announcement (announcements can land on
	// weekends or holidays).
	baselineSearchDays = 3
)

// MarketRepository abstracts the external market-data API.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	GetOverview(ctx context.Context, ticker string) (stocksentity.Stock, error)
	GetDailySeries(ctx context.Context, ticker string, outputsize int) ([]pricesentity.Bar, error)
	GetEarnings(ctx context.Context, ticker string) ([]earningsentity.EarningsEvent, error)
}

// StockWriter persists stock metadata.
type StockWriter interface {
	Upsert(ctx context.Context, stock stocksentity.Stock) error
}

// BarWriter persists daily bars.
type BarWriter interface {
	UpsertBatch(ctx context.Context, bars []pricesentity.Bar) error
}

// EarningsWriter persists earnings events.
type EarningsWriter interface {
	UpsertBatch(ctx context.Context, events []earningsentity.EarningsEvent) error
}

// Analyzer recomputes the persisted indicator snapshot for a ticker.
type Analyzer interface {
	Refresh(ctx context.Context, ticker string) error
}

// CollectorUsecase runs the per-ticker collection pipeline.
type CollectorUsecase struct {
	market   MarketRepository
	stocks   StockWriter
	bars     BarWriter
	earnings EarningsWriter
	analyzer Analyzer
	limiter  ratelimiter.RateLimiterInterface
}

// NewCollectorUsecase creates a new CollectorUsecase with the given collaborators.
func NewCollectorUsecase(market MarketRepository, stocks StockWriter, bars BarWriter,
	earnings EarningsWriter, analyzer Analyzer, limiter ratelimiter.RateLimiterInterface) *CollectorUsecase {
	return &CollectorUsecase{
		market:   market,
		stocks:   stocks,
		bars:     bars,
		earnings: earnings,
		analyzer: analyzer,
		limiter:  limiter,
	}
}

// collectOne runs the full pipeline for a single ticker. Missing earnings
// are logged and tolerated; everything else aborts the ticker.
func (u *CollectorUsecase) collectOne(ctx context.Context, ticker string) error {
	u.limiter.WaitIfNeeded()
	stock, err := u.market.GetOverview(ctx, ticker)
	if err != nil {
		return fmt.Errorf("fetch overview: %w", err)
	}
	stock.IsActive = true
	if err := u.stocks.Upsert(ctx, stock); err != nil {
		return fmt.Errorf("save stock: %w", err)
	}

	u.limiter.WaitIfNeeded()
	bars, err := u.market.GetDailySeries(ctx, ticker, fetchOutputSize)
	if err != nil {
		return fmt.Errorf("fetch daily series: %w", err)
	}
	for i := range bars {
		bars[i].Ticker = ticker
	}
	if err := u.bars.UpsertBatch(ctx, bars); err != nil {
		return fmt.Errorf("save bars: %w", err)
	}

	u.limiter.WaitIfNeeded()
	events, err := u.market.GetEarnings(ctx, ticker)
	if err != nil {
		// Earnings are an enrichment; the indicators degrade to a
		// neutral earnings signal without them.
		slog.Warn("failed to fetch earnings", "ticker", ticker, "error", err)
	} else {
		for i := range events {
			events[i].Ticker = ticker
		}
		applyPostEarningsChanges(bars, events)
		if err := u.earnings.UpsertBatch(ctx, events); err != nil {
			return fmt.Errorf("save earnings: %w", err)
		}
	}

	if err := u.analyzer.Refresh(ctx, ticker); err != nil {
		return fmt.Errorf("refresh indicators: %w", err)
	}
	return nil
}

// applyPostEarningsChanges fills in the 1- and 5-trading-day price moves
// after each announcement from the fetched bars. Events whose baseline or
// future bar is not in the series yet keep nil changes.
func applyPostEarningsChanges(bars []pricesentity.Bar, events []earningsentity.EarningsEvent) {
	for i := range events {
		base := baselineBarIndex(bars, events[i].AnnouncementDate)
		if base < 0 {
			continue
		}
		events[i].Price1DChange = percentChange(bars, base, 1)
		events[i].Price5DChange = percentChange(bars, base, 5)
	}
}

// baselineBarIndex returns the index of the bar on the announcement date
// or the next trading day within baselineSearchDays, or -1 when the
// series has no such bar. The bars must be in ascending date order.
func baselineBarIndex(bars []pricesentity.Bar, announced time.Time) int {
	limit := announced.AddDate(0, 0, baselineSearchDays)
	for i, b := range bars {
		if b.Date.Before(announced) {
			continue
		}
		if b.Date.After(limit) {
			return -1
		}
		return i
	}
	return -1
}

// percentChange returns the percent close-to-close move from the base bar
// to the bar days trading days later, or nil when that bar does not exist.
func percentChange(bars []pricesentity.Bar, base, days int) *float64 {
	after := base + days
	if after >= len(bars) || bars[base].Close == 0 {
		return nil
	}
	v := (bars[after].Close - bars[base].Close) / bars[base].Close * 100
	return &v
}

// CollectAll runs the pipeline for every ticker, logging and skipping
// failures so one bad ticker never stops the batch. It returns the number
// of tickers collected successfully.
func (u *CollectorUsecase) CollectAll(ctx context.Context, tickers []string) int {
	ok := 0
	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			slog.Warn("collection aborted", "error", err, "collected", ok, "total", len(tickers))
			return ok
		}
		if err := u.collectOne(ctx, ticker); err != nil {
			slog.Error("failed to collect ticker", "ticker", ticker, "error", err)
			continue
		}
		ok++
	}
	slog.Info("collection finished", "collected", ok, "total", len(tickers))
	return ok
}
