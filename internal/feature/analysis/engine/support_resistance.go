package engine

const (
	// DefaultLookback is the window used for the primary support and
	// resistance levels when the caller does not specify one. It is fixed
	// so that recomputation stays reproducible.
	DefaultLookback = 60

	// yearBars approximates 52 trading weeks, used for the secondary
	// levels and the 52-week extrema.
	yearBars = 252
)

// SupportResistance holds the derived price levels for a series as of its
// last bar. Support1/Resistance1 are the extrema of the recent lookback
// window; Support2/Resistance2 widen the band to the trailing year and
// coincide with the 52-week extrema.
type SupportResistance struct {
	Support1         float64
	Support2         float64
	Resistance1      float64
	Resistance2      float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
}

// ComputeSupportResistance derives the support and resistance levels over
// the trailing lookback bars: support1 is the minimum low, resistance1 the
// maximum high. A lookback of zero or less selects DefaultLookback. An
// empty series fails with ErrInsufficientData.
func ComputeSupportResistance(s Series, lookback int) (SupportResistance, error) {
	if err := s.Validate(); err != nil {
		return SupportResistance{}, err
	}
	return computeSupportResistance(s, lookback)
}

func computeSupportResistance(s Series, lookback int) (SupportResistance, error) {
	if len(s) == 0 {
		return SupportResistance{}, ErrInsufficientData
	}
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	lo1, hi1 := rangeExtrema(s, lookback)
	lo2, hi2 := rangeExtrema(s, yearBars)

	return SupportResistance{
		Support1:         lo1,
		Support2:         lo2,
		Resistance1:      hi1,
		Resistance2:      hi2,
		FiftyTwoWeekHigh: hi2,
		FiftyTwoWeekLow:  lo2,
	}, nil
}

// rangeExtrema scans the most recent n bars and returns the lowest low
// and the highest high. The series must be non-empty.
func rangeExtrema(s Series, n int) (low, high float64) {
	start := len(s) - n
	if start < 0 {
		start = 0
	}
	low = s[start].Low
	high = s[start].High
	for _, b := range s[start+1:] {
		if b.Low < low {
			low = b.Low
		}
		if b.High > high {
			high = b.High
		}
	}
	return low, high
}
