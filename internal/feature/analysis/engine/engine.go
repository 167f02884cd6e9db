package engine

import (
	"sort"
	"time"
)

// EarningsEvent is one earnings announcement consumed by the engine.
// SurprisePercent is nil when the surprise is unknown. Events are external
// data; the engine filters and scores them but never computes them.
type EarningsEvent struct {
	Date            time.Time
	SurprisePercent *float64
}

// IndicatorSet is the derived, immutable snapshot computed from a series
// as of its last bar. It is a pure function of (Series, events): repeated
// computation over the same input yields bit-for-bit identical results.
type IndicatorSet struct {
	MA20              []*float64
	MA50              []*float64
	MA200             []*float64
	SupportResistance SupportResistance
	TrendScore        TrendScore
	EarningsDates     []time.Time
}

// Compute validates the series once and derives the full indicator set:
// 20-, 50- and 200-bar moving averages, support/resistance levels over
// DefaultLookback, the trend score, and the earnings dates falling within
// the series' range. An empty series fails with ErrInsufficientData; a
// structurally invalid one with ErrMalformedSeries and no partial result.
func Compute(s Series, events []EarningsEvent) (IndicatorSet, error) {
	if err := s.Validate(); err != nil {
		return IndicatorSet{}, err
	}
	if len(s) == 0 {
		return IndicatorSet{}, ErrInsufficientData
	}

	sr, err := computeSupportResistance(s, DefaultLookback)
	if err != nil {
		return IndicatorSet{}, err
	}

	annotated := selectEarningsAnnotations(s, events)
	score, err := computeTrendScores(s, annotated)
	if err != nil {
		return IndicatorSet{}, err
	}

	closes := s.closes()
	dates := make([]time.Time, len(annotated))
	for i, e := range annotated {
		dates[i] = e.Date
	}

	return IndicatorSet{
		MA20:              movingAverage(closes, 20),
		MA50:              movingAverage(closes, 50),
		MA200:             movingAverage(closes, 200),
		SupportResistance: sr,
		TrendScore:        score,
		EarningsDates:     dates,
	}, nil
}

// SelectEarningsAnnotations filters events to those dated within the
// series' date range and returns them in ascending date order, for chart
// overlay markers. An empty series has an empty range.
func SelectEarningsAnnotations(s Series, events []EarningsEvent) ([]EarningsEvent, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return selectEarningsAnnotations(s, events), nil
}

func selectEarningsAnnotations(s Series, events []EarningsEvent) []EarningsEvent {
	out := make([]EarningsEvent, 0, len(events))
	if len(s) == 0 {
		return out
	}
	first, last := s[0].Date, s[len(s)-1].Date
	for _, e := range events {
		if e.Date.Before(first) || e.Date.After(last) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
