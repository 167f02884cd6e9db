package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stock_dashboard/internal/feature/analysis/domain/entity"
	"stock_dashboard/internal/feature/analysis/engine"
	earningsentity "stock_dashboard/internal/feature/earnings/domain/entity"
	pricesentity "stock_dashboard/internal/feature/prices/domain/entity"
	stocksentity "stock_dashboard/internal/feature/stocks/domain/entity"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
)

const (
	// refreshOutputSize is how much history a snapshot refresh loads.
	// It comfortably covers the 52-week window plus the ma50 warmup.
	refreshOutputSize = 400

	// DefaultTrendingLimit is the default number of ranked stocks returned.
	DefaultTrendingLimit = 20
	// MaxTrendingLimit is the maximum number of ranked stocks returned.
	MaxTrendingLimit = 100
)

// BarProvider serves price history ready for computation: the most
// recent bars in ascending date order. The prices usecase is the
// implementation.
type BarProvider interface {
	GetBars(ctx context.Context, ticker string, outputsize int) ([]pricesentity.Bar, error)
}

// EarningsReader abstracts the read side of the earnings store.
type EarningsReader interface {
	ListByTicker(ctx context.Context, ticker string) ([]earningsentity.EarningsEvent, error)
}

// StockReader abstracts the stock metadata lookups this feature needs.
type StockReader interface {
	FindByTicker(ctx context.Context, ticker string) (stocksentity.Stock, error)
}

// SnapshotRepository abstracts the persistence layer for indicator snapshots.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type SnapshotRepository interface {
	Upsert(ctx context.Context, snap entity.IndicatorSnapshot) error
	LatestByTicker(ctx context.Context, ticker string) (entity.IndicatorSnapshot, error)
	TopByCombinedScore(ctx context.Context, limit int) ([]entity.IndicatorSnapshot, error)
}

// TrendingStock pairs a ranked snapshot with its stock metadata.
type TrendingStock struct {
	Stock    stocksentity.Stock
	Snapshot entity.IndicatorSnapshot
}

// AnalysisUsecase refreshes and serves persisted indicator snapshots.
type AnalysisUsecase struct {
	stocks    StockReader
	bars      BarProvider
	earnings  EarningsReader
	snapshots SnapshotRepository
}

// NewAnalysisUsecase creates a new AnalysisUsecase with the given collaborators.
func NewAnalysisUsecase(stocks StockReader, bars BarProvider, earnings EarningsReader, snapshots SnapshotRepository) *AnalysisUsecase {
	return &AnalysisUsecase{stocks: stocks, bars: bars, earnings: earnings, snapshots: snapshots}
}

// Refresh recomputes the indicator snapshot for the ticker from its stored
// bars and earnings, and persists it. The engine's failure semantics pass
// through: a malformed stored series aborts with engine.ErrMalformedSeries
// so the caller can log and skip the ticker.
func (u *AnalysisUsecase) Refresh(ctx context.Context, ticker string) error {
	bars, err := u.bars.GetBars(ctx, ticker, refreshOutputSize)
	if err != nil {
		return fmt.Errorf("load bars for %s: %w", ticker, err)
	}

	events, err := u.earnings.ListByTicker(ctx, ticker)
	if err != nil {
		return fmt.Errorf("load earnings for %s: %w", ticker, err)
	}

	set, err := engine.Compute(toSeries(bars), toEngineEvents(events))
	if err != nil {
		return fmt.Errorf("compute indicators for %s: %w", ticker, err)
	}

	last := len(bars) - 1
	snap := entity.IndicatorSnapshot{
		Ticker:           ticker,
		Date:             bars[last].Date,
		MA20:             set.MA20[last],
		MA50:             set.MA50[last],
		MA200:            set.MA200[last],
		Support1:         set.SupportResistance.Support1,
		Support2:         set.SupportResistance.Support2,
		Resistance1:      set.SupportResistance.Resistance1,
		Resistance2:      set.SupportResistance.Resistance2,
		FiftyTwoWeekHigh: set.SupportResistance.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  set.SupportResistance.FiftyTwoWeekLow,
		PriceScore:       set.TrendScore.Price,
		VolumeScore:      set.TrendScore.Volume,
		EarningsScore:    set.TrendScore.Earnings,
		CombinedScore:    set.TrendScore.Combined,
		ScoreVersion:     engine.TrendScoreVersion,
	}

	if err := u.snapshots.Upsert(ctx, snap); err != nil {
		return fmt.Errorf("persist snapshot for %s: %w", ticker, err)
	}
	return nil
}

// Trending returns the top stocks ranked by combined trend score, newest
// snapshot per ticker. Snapshots whose stock metadata has gone missing are
// skipped with a warning rather than failing the whole ranking.
func (u *AnalysisUsecase) Trending(ctx context.Context, limit int) ([]TrendingStock, error) {
	if limit <= 0 || limit > MaxTrendingLimit {
		limit = DefaultTrendingLimit
	}

	snaps, err := u.snapshots.TopByCombinedScore(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]TrendingStock, 0, len(snaps))
	for _, snap := range snaps {
		stock, err := u.stocks.FindByTicker(ctx, snap.Ticker)
		if err != nil {
			if errors.Is(err, stocksusecase.ErrStockNotFound) {
				slog.Warn("snapshot without stock metadata", "ticker", snap.Ticker)
				continue
			}
			return nil, err
		}
		out = append(out, TrendingStock{Stock: stock, Snapshot: snap})
	}
	return out, nil
}
