// Package entity defines the domain models for the analysis feature.
package entity

import "time"

// IndicatorSnapshot is the persisted result of one indicator-engine run
// for a ticker, taken as of the date of its newest bar. Listing and
// ranking endpoints read snapshots instead of recomputing; the collector
// refreshes them after every ingest.
type IndicatorSnapshot struct {
	Ticker string
	Date   time.Time

	// Latest moving-average values; nil while the series is shorter than
	// the window.
	MA20  *float64
	MA50  *float64
	MA200 *float64

	Support1         float64
	Support2         float64
	Resistance1      float64
	Resistance2      float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64

	// Trend scores, all in [0,100].
	PriceScore    float64
	VolumeScore   float64
	EarningsScore float64
	CombinedScore float64

	// ScoreVersion records which scoring formula produced the snapshot.
	ScoreVersion int
}
