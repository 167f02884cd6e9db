// Package usecase implements the business logic for stock metadata operations.
package usecase

import (
	"context"
	"errors"

	"stock_dashboard/internal/feature/stocks/domain/entity"
)

// ErrStockNotFound is returned when no stock matches the requested ticker.
var ErrStockNotFound = errors.New("stock not found")

// StockRepository abstracts the persistence layer for stock metadata.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type StockRepository interface {
	Upsert(ctx context.Context, stock entity.Stock) error
	FindByTicker(ctx context.Context, ticker string) (entity.Stock, error)
	ListActive(ctx context.Context) ([]entity.Stock, error)
	ListActiveTickers(ctx context.Context) ([]string, error)
}

// StockUsecase provides business logic for stock metadata operations.
type StockUsecase struct {
	repo StockRepository
}

// NewStockUsecase creates a new StockUsecase with the given repository.
func NewStockUsecase(r StockRepository) *StockUsecase {
	return &StockUsecase{repo: r}
}

// ListActiveStocks returns all active stocks ordered by ticker.
func (u *StockUsecase) ListActiveStocks(ctx context.Context) ([]entity.Stock, error) {
	return u.repo.ListActive(ctx)
}

// GetByTicker returns the stock for the given ticker, or ErrStockNotFound.
func (u *StockUsecase) GetByTicker(ctx context.Context, ticker string) (entity.Stock, error) {
	return u.repo.FindByTicker(ctx, ticker)
}
