// Package usecase implements the business logic for price history operations.
package usecase

import (
	"context"

	"stock_dashboard/internal/feature/prices/domain/entity"
)

const (
	// DefaultOutputSize is the default number of bars returned per query.
	DefaultOutputSize = 200
	// MaxOutputSize is the maximum number of bars returned per query.
	MaxOutputSize = 5000
)

// BarRepository abstracts the read/write layer for daily bars.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type BarRepository interface {
	// UpsertBatch inserts or updates bars keyed by (ticker, date).
	UpsertBatch(ctx context.Context, bars []entity.Bar) error
	// Find returns up to outputsize of the most recent bars for the
	// ticker, ordered by date descending.
	Find(ctx context.Context, ticker string, outputsize int) ([]entity.Bar, error)
}

// PricesUsecase provides business logic for price history operations.
type PricesUsecase struct {
	bars BarRepository
}

// NewPricesUsecase creates a new PricesUsecase with the given repository.
func NewPricesUsecase(bars BarRepository) *PricesUsecase {
	return &PricesUsecase{bars: bars}
}

// GetBars returns the most recent bars for the ticker reordered to date
// ascending, the orientation every indicator computation expects.
func (u *PricesUsecase) GetBars(ctx context.Context, ticker string, outputsize int) ([]entity.Bar, error) {
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}

	bars, err := u.bars.Find(ctx, ticker, outputsize)
	if err != nil {
		return nil, err
	}

	// Find returns newest-first; flip to ascending.
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return bars, nil
}
