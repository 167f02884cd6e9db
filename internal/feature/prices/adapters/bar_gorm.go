package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_dashboard/internal/feature/prices/domain/entity"
	"stock_dashboard/internal/feature/prices/usecase"
)

type barGorm struct {
	db *gorm.DB
}

var _ usecase.BarRepository = (*barGorm)(nil)

// NewBarRepository creates a new barGorm repository with the given DB connection.
func NewBarRepository(db *gorm.DB) *barGorm {
	return &barGorm{db: db}
}

// BarModel is the persistence mapping for daily bars.
type BarModel struct {
	ID     uint      `gorm:"primaryKey"`
	Ticker string    `gorm:"size:10;not null;uniqueIndex:bar_ticker_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:bar_ticker_date,priority:2"`

	Open          float64 `gorm:"not null"`
	High          float64 `gorm:"not null"`
	Low           float64 `gorm:"not null"`
	Close         float64 `gorm:"not null"`
	AdjustedClose float64 `gorm:"not null;default:0"`
	Volume        int64   `gorm:"not null;default:0"`
}

func (BarModel) TableName() string {
	return "bars"
}

func toModel(e entity.Bar) BarModel {
	return BarModel{
		Ticker:        e.Ticker,
		Date:          e.Date,
		Open:          e.Open,
		High:          e.High,
		Low:           e.Low,
		Close:         e.Close,
		AdjustedClose: e.AdjustedClose,
		Volume:        e.Volume,
	}
}

func toEntity(m BarModel) entity.Bar {
	return entity.Bar{
		Ticker:        m.Ticker,
		Date:          m.Date,
		Open:          m.Open,
		High:          m.High,
		Low:           m.Low,
		Close:         m.Close,
		AdjustedClose: m.AdjustedClose,
		Volume:        m.Volume,
	}
}

// UpsertBatch inserts or updates bars keyed by (ticker, date).
func (r *barGorm) UpsertBatch(ctx context.Context, bars []entity.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	ms := make([]BarModel, 0, len(bars))
	for _, e := range bars {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "adjusted_close", "volume"}),
	}).Create(&ms).Error
}

// Find returns up to outputsize of the most recent bars for the ticker,
// ordered by date descending.
func (r *barGorm) Find(ctx context.Context, ticker string, outputsize int) ([]entity.Bar, error) {
	var rows []BarModel
	q := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("date DESC")
	if outputsize > 0 {
		q = q.Limit(outputsize)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Bar, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
