package engine

import "fmt"

// MovingAverage returns the trailing simple moving average of closing
// prices. The result has the same length as the series; position i holds
// the mean over positions [i-window+1, i], or nil while fewer than window
// bars of history exist. An empty series yields an empty result.
func MovingAverage(s Series, window int) ([]*float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return movingAverage(s.closes(), window), nil
}

// movingAverage computes the trailing SMA over pre-validated closes.
// The sum is recomputed per position rather than kept rolling so that
// each value is exactly the mean of its window, independent of series
// length.
func movingAverage(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	for i := range closes {
		if i < window-1 {
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		v := sum / float64(window)
		out[i] = &v
	}
	return out
}
