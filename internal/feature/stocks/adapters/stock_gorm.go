// Package adapters provides the repository implementations for the stocks feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// stockGorm is the GORM implementation of the StockRepository interface.
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository creates a new stockGorm repository with the given DB connection.
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// Upsert inserts the stock or, when the ticker already exists, refreshes
// its metadata in place.
func (r *stockGorm) Upsert(ctx context.Context, stock entity.Stock) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company_name", "sector", "industry", "country", "market_cap", "is_active",
		}),
	}).Create(&stock).Error
}

// FindByTicker returns the stock with the given ticker, or
// usecase.ErrStockNotFound when it does not exist.
func (r *stockGorm) FindByTicker(ctx context.Context, ticker string) (entity.Stock, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Stock{}, usecase.ErrStockNotFound
	}
	if err != nil {
		return entity.Stock{}, err
	}
	return stock, nil
}

// ListActive returns all active stocks ordered by ticker.
func (r *stockGorm) ListActive(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("ticker ASC").
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// ListActiveTickers returns only the tickers of active stocks, for the collector loop.
func (r *stockGorm) ListActiveTickers(ctx context.Context) ([]string, error) {
	var tickers []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("is_active = ?", true).
		Order("ticker ASC").
		Pluck("ticker", &tickers).Error; err != nil {
		return nil, err
	}
	return tickers, nil
}
