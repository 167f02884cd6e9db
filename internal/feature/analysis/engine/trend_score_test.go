package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrendScore_WithinBounds(t *testing.T) {
	t.Parallel()

	zero := linearSeries(30, 0, 0)
	for i := range zero {
		zero[i].High = 0
		zero[i].Low = 0
		zero[i].Volume = 0
	}

	tests := []struct {
		name   string
		series Series
	}{
		{"strictly increasing", linearSeries(60, 100, 1)},
		{"strictly decreasing", reversed(linearSeries(60, 100, 1))},
		{"flat", linearSeries(60, 100, 0)},
		{"single bar", linearSeries(1, 100, 0)},
		{"all zero", zero},
		{"steep rally", linearSeries(120, 10, 50)},
		{"steep crash", reversed(linearSeries(120, 10, 50))},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, err := ComputeTrendScore(tt.series)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestComputeTrendScore_RisingBeatsFalling(t *testing.T) {
	t.Parallel()

	rising := linearSeries(60, 100, 1)
	falling := reversed(rising)

	up, err := ComputeTrendScore(rising)
	require.NoError(t, err)
	down, err := ComputeTrendScore(falling)
	require.NoError(t, err)

	assert.Greater(t, up, down)
}

// TestReturnSignal_Monotone holds every input except the last close fixed
// and checks the return signal never decreases as the close rises.
func TestReturnSignal_Monotone(t *testing.T) {
	t.Parallel()

	prev := -1.0
	for _, last := range []float64{50, 90, 100, 101, 110, 150, 500} {
		s := linearSeries(30, 100, 0)
		s[len(s)-1].Close = last
		s[len(s)-1].High = last + 1
		s[len(s)-1].Low = last - 1

		got := returnSignal(s)
		assert.GreaterOrEqual(t, got, prev, "signal decreased at close %v", last)
		prev = got
	}
}

func TestBandSignal_Position(t *testing.T) {
	t.Parallel()

	s := linearSeries(60, 100, 1)
	sr, err := ComputeSupportResistance(s, DefaultLookback)
	require.NoError(t, err)

	// Last close 159 inside the [99,160] band.
	want := (159.0 - 99.0) / (160.0 - 99.0) * 100
	assert.InDelta(t, want, bandSignal(s, sr), 1e-9)

	// Zero-width band is neutral.
	assert.Equal(t, 50.0, bandSignal(s, SupportResistance{Support1: 10, Resistance1: 10}))
}

func TestCrossoverSignal_ShortHistoryIsNeutral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50.0, crossoverSignal(linearSeries(49, 100, 1)))
}

func TestVolumeSignal(t *testing.T) {
	t.Parallel()

	s := linearSeries(40, 100, 0)
	// Recent 5 bars trade at double the baseline volume.
	for i := len(s) - 5; i < len(s); i++ {
		s[i].Volume = 2000
	}

	assert.Equal(t, 100.0, volumeSignal(s))

	// Zero baseline is neutral.
	for i := range s {
		s[i].Volume = 0
	}
	assert.Equal(t, 50.0, volumeSignal(s))
}

func TestEarningsSignal(t *testing.T) {
	t.Parallel()

	pct := func(v float64) *float64 { return &v }
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 50.0, earningsSignal(nil), "no events is neutral")
	assert.Equal(t, 50.0, earningsSignal([]EarningsEvent{{Date: day(1)}}), "events without surprise are neutral")

	// Only the most recent three surprises count: mean(2,4,6) = 4.
	events := []EarningsEvent{
		{Date: day(1), SurprisePercent: pct(-100)},
		{Date: day(2), SurprisePercent: pct(2)},
		{Date: day(3), SurprisePercent: pct(4)},
		{Date: day(4), SurprisePercent: pct(6)},
	}
	assert.InDelta(t, 50+surpriseScale*4, earningsSignal(events), 1e-9)
}

func TestComputeTrendScores_MalformedSeries(t *testing.T) {
	t.Parallel()

	s := linearSeries(10, 100, 1)
	s[5].Date = s[4].Date

	_, err := ComputeTrendScores(s, nil)
	require.ErrorIs(t, err, ErrMalformedSeries)
}

func TestComputeTrendScores_EmptySeries(t *testing.T) {
	t.Parallel()

	_, err := ComputeTrendScores(Series{}, nil)
	require.ErrorIs(t, err, ErrInsufficientData)
}
