package usecase

import (
	"context"
	"errors"
	"fmt"

	"stock_dashboard/internal/feature/analysis/engine"
	pricesentity "stock_dashboard/internal/feature/prices/domain/entity"
	stocksentity "stock_dashboard/internal/feature/stocks/domain/entity"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
)

const (
	// DefaultChartBars is the default amount of history in a chart payload.
	DefaultChartBars = 200
	// MaxChartBars is the maximum amount of history in a chart payload.
	MaxChartBars = 5000
)

// ChartData is everything a rendering layer needs to draw one ticker:
// the stock metadata, its bars in ascending date order, and the indicator
// set computed over exactly those bars.
type ChartData struct {
	Stock      stocksentity.Stock
	Bars       []pricesentity.Bar
	Indicators engine.IndicatorSet
}

// ChartUsecase assembles chart payloads on demand. Indicators are computed
// fresh from the stored bars so the chart always matches the history it
// displays, regardless of snapshot freshness.
type ChartUsecase struct {
	stocks   StockReader
	bars     BarProvider
	earnings EarningsReader
}

// NewChartUsecase creates a new ChartUsecase with the given collaborators.
func NewChartUsecase(stocks StockReader, bars BarProvider, earnings EarningsReader) *ChartUsecase {
	return &ChartUsecase{stocks: stocks, bars: bars, earnings: earnings}
}

// GetChart returns the chart payload for the ticker, covering up to
// outputsize recent bars. Unknown tickers fail with ErrUnknownTicker;
// the engine's error semantics (malformed or empty series) pass through.
func (u *ChartUsecase) GetChart(ctx context.Context, ticker string, outputsize int) (ChartData, error) {
	if outputsize <= 0 || outputsize > MaxChartBars {
		outputsize = DefaultChartBars
	}

	stock, err := u.stocks.FindByTicker(ctx, ticker)
	if err != nil {
		if errors.Is(err, stocksusecase.ErrStockNotFound) {
			return ChartData{}, ErrUnknownTicker
		}
		return ChartData{}, err
	}

	bars, err := u.bars.GetBars(ctx, ticker, outputsize)
	if err != nil {
		return ChartData{}, fmt.Errorf("load bars for %s: %w", ticker, err)
	}

	events, err := u.earnings.ListByTicker(ctx, ticker)
	if err != nil {
		return ChartData{}, fmt.Errorf("load earnings for %s: %w", ticker, err)
	}

	set, err := engine.Compute(toSeries(bars), toEngineEvents(events))
	if err != nil {
		return ChartData{}, err
	}

	return ChartData{Stock: stock, Bars: bars, Indicators: set}, nil
}
