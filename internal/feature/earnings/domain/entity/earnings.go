// Package entity defines the domain models for the earnings feature.
package entity

import "time"

// EarningsEvent is one earnings announcement for a ticker. The EPS and
// surprise fields are nil when the upstream source did not report them;
// the post-announcement price changes are computed by the collector from
// the stored bars and stay nil until enough trading days have passed.
type EarningsEvent struct {
	ID               uint       `gorm:"primaryKey"`
	Ticker           string     `gorm:"size:10;not null;uniqueIndex:earnings_ticker_date,priority:1"`
	AnnouncementDate time.Time  `gorm:"not null;uniqueIndex:earnings_ticker_date,priority:2"`
	PeriodEnding     *time.Time
	ReportedEPS      *float64 `gorm:"column:reported_eps"`
	EstimatedEPS     *float64 `gorm:"column:estimated_eps"`
	Surprise         *float64
	SurprisePercent  *float64
	Price1DChange    *float64 `gorm:"column:price_1d_change"`
	Price5DChange    *float64 `gorm:"column:price_5d_change"`
}

// TableName maps the entity to the earnings table.
func (EarningsEvent) TableName() string {
	return "earnings"
}
