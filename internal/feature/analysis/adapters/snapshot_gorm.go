// Package adapters provides the repository implementations for the analysis feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_dashboard/internal/feature/analysis/domain/entity"
	"stock_dashboard/internal/feature/analysis/usecase"
)

type snapshotGorm struct {
	db *gorm.DB
}

var _ usecase.SnapshotRepository = (*snapshotGorm)(nil)

// NewSnapshotRepository creates a new snapshotGorm repository with the given DB connection.
func NewSnapshotRepository(db *gorm.DB) *snapshotGorm {
	return &snapshotGorm{db: db}
}

// IndicatorSnapshotModel is the persistence mapping for indicator snapshots.
type IndicatorSnapshotModel struct {
	ID     uint      `gorm:"primaryKey"`
	Ticker string    `gorm:"size:10;not null;uniqueIndex:snapshot_ticker_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:snapshot_ticker_date,priority:2"`

	MA20  *float64 `gorm:"column:ma_20"`
	MA50  *float64 `gorm:"column:ma_50"`
	MA200 *float64 `gorm:"column:ma_200"`

	Support1         float64 `gorm:"not null"`
	Support2         float64 `gorm:"not null"`
	Resistance1      float64 `gorm:"not null"`
	Resistance2      float64 `gorm:"not null"`
	FiftyTwoWeekHigh float64 `gorm:"not null"`
	FiftyTwoWeekLow  float64 `gorm:"not null"`

	PriceScore    float64 `gorm:"not null"`
	VolumeScore   float64 `gorm:"not null"`
	EarningsScore float64 `gorm:"not null"`
	CombinedScore float64 `gorm:"not null;index"`

	ScoreVersion int `gorm:"not null;default:1"`
}

func (IndicatorSnapshotModel) TableName() string {
	return "indicator_snapshots"
}

func toModel(e entity.IndicatorSnapshot) IndicatorSnapshotModel {
	return IndicatorSnapshotModel{
		Ticker:           e.Ticker,
		Date:             e.Date,
		MA20:             e.MA20,
		MA50:             e.MA50,
		MA200:            e.MA200,
		Support1:         e.Support1,
		Support2:         e.Support2,
		Resistance1:      e.Resistance1,
		Resistance2:      e.Resistance2,
		FiftyTwoWeekHigh: e.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  e.FiftyTwoWeekLow,
		PriceScore:       e.PriceScore,
		VolumeScore:      e.VolumeScore,
		EarningsScore:    e.EarningsScore,
		CombinedScore:    e.CombinedScore,
		ScoreVersion:     e.ScoreVersion,
	}
}

func toEntity(m IndicatorSnapshotModel) entity.IndicatorSnapshot {
	return entity.IndicatorSnapshot{
		Ticker:           m.Ticker,
		Date:             m.Date,
		MA20:             m.MA20,
		MA50:             m.MA50,
		MA200:            m.MA200,
		Support1:         m.Support1,
		Support2:         m.Support2,
		Resistance1:      m.Resistance1,
		Resistance2:      m.Resistance2,
		FiftyTwoWeekHigh: m.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  m.FiftyTwoWeekLow,
		PriceScore:       m.PriceScore,
		VolumeScore:      m.VolumeScore,
		EarningsScore:    m.EarningsScore,
		CombinedScore:    m.CombinedScore,
		ScoreVersion:     m.ScoreVersion,
	}
}

// Upsert inserts the snapshot or replaces the existing one for the same
// (ticker, date).
func (r *snapshotGorm) Upsert(ctx context.Context, snap entity.IndicatorSnapshot) error {
	m := toModel(snap)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticker"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"ma_20", "ma_50", "ma_200",
			"support1", "support2", "resistance1", "resistance2",
			"fifty_two_week_high", "fifty_two_week_low",
			"price_score", "volume_score", "earnings_score", "combined_score",
			"score_version",
		}),
	}).Create(&m).Error
}

// LatestByTicker returns the most recent snapshot for the ticker, or
// usecase.ErrNoSnapshot when none exists.
func (r *snapshotGorm) LatestByTicker(ctx context.Context, ticker string) (entity.IndicatorSnapshot, error) {
	var m IndicatorSnapshotModel
	err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("date DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.IndicatorSnapshot{}, usecase.ErrNoSnapshot
	}
	if err != nil {
		return entity.IndicatorSnapshot{}, err
	}
	return toEntity(m), nil
}

// TopByCombinedScore returns each ticker's newest snapshot, ordered by
// combined score descending, limited to limit rows.
func (r *snapshotGorm) TopByCombinedScore(ctx context.Context, limit int) ([]entity.IndicatorSnapshot, error) {
	latest := r.db.Model(&IndicatorSnapshotModel{}).
		Select("ticker AS t, MAX(date) AS d").
		Group("ticker")

	var rows []IndicatorSnapshotModel
	q := r.db.WithContext(ctx).
		Model(&IndicatorSnapshotModel{}).
		Joins("JOIN (?) latest ON indicator_snapshots.ticker = latest.t AND indicator_snapshots.date = latest.d", latest).
		Order("combined_score DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.IndicatorSnapshot, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
