// Package engine implements the indicator computations for the analysis
// feature: moving averages, support/resistance levels, and trend scores.
//
// Every function in this package is pure and deterministic: the same Series
// always produces the same output, with no wall-clock, randomness, or I/O
// involved. Fetching bars and persisting results belong to the callers.
package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMalformedSeries is returned when a series violates its structural
	// contract (unsorted or duplicate dates, negative prices or volume).
	// The failure is fatal to the computation and must propagate; callers
	// log and skip the ticker rather than work with wrong numbers.
	ErrMalformedSeries = errors.New("malformed series")

	// ErrInsufficientData is returned when an indicator needs more history
	// than the series contains. Callers render null or skip the ticker,
	// never substitute zero.
	ErrInsufficientData = errors.New("insufficient data")
)

// Bar is one trading day of OHLCV data for a single ticker.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Series is an ordered sequence of daily bars for one ticker, sorted by
// date ascending with unique dates. Gaps for holidays and weekends are
// expected; duplicates are not.
type Series []Bar

// Validate checks the structural contract of the series. It reports the
// first offending bar wrapped in ErrMalformedSeries.
func (s Series) Validate() error {
	for i, b := range s {
		if b.Open < 0 || b.High < 0 || b.Low < 0 || b.Close < 0 {
			return fmt.Errorf("bar %d (%s): negative price: %w", i, b.Date.Format("2006-01-02"), ErrMalformedSeries)
		}
		if b.Volume < 0 {
			return fmt.Errorf("bar %d (%s): negative volume: %w", i, b.Date.Format("2006-01-02"), ErrMalformedSeries)
		}
		if i > 0 && !b.Date.After(s[i-1].Date) {
			return fmt.Errorf("bar %d (%s): dates not strictly ascending: %w", i, b.Date.Format("2006-01-02"), ErrMalformedSeries)
		}
	}
	return nil
}

// closes extracts the closing prices of the series.
func (s Series) closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}
