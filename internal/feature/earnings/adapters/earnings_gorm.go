// Package adapters provides the repository implementations for the earnings feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_dashboard/internal/feature/earnings/domain/entity"
)

// earningsGorm persists earnings announcements keyed by (ticker, date).
type earningsGorm struct {
	db *gorm.DB
}

// NewEarningsRepository creates a new earningsGorm repository with the given DB connection.
func NewEarningsRepository(db *gorm.DB) *earningsGorm {
	return &earningsGorm{db: db}
}

// UpsertBatch inserts or updates earnings events keyed by (ticker, announcement_date).
func (r *earningsGorm) UpsertBatch(ctx context.Context, events []entity.EarningsEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticker"}, {Name: "announcement_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"period_ending", "reported_eps", "estimated_eps",
			"surprise", "surprise_percent", "price_1d_change", "price_5d_change",
		}),
	}).Create(&events).Error
}

// ListByTicker returns all earnings events for the ticker, oldest first.
func (r *earningsGorm) ListByTicker(ctx context.Context, ticker string) ([]entity.EarningsEvent, error) {
	var events []entity.EarningsEvent
	if err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("announcement_date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
