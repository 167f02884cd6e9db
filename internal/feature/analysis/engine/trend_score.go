package engine

// TrendScoreVersion identifies the scoring formula below. Bump it whenever
// the signals, scales, or weights change so that stored scores from
// different formula generations are distinguishable downstream.
const TrendScoreVersion = 1

// Trend score formula, version 1.
//
// Three price signals, each mapped to [0,100] with 50 as neutral:
//
//	return signal: percent change of close over the trailing returnWindow
//	bars, scaled so a +/-20% move saturates the signal.
//
//	band signal: position of the last close inside the
//	[support1, resistance1] band, 0 at support and 100 at resistance.
//
//	crossover signal: relative spread of ma20 over ma50 at the last bar,
//	scaled so a +/-10% spread saturates. Neutral while fewer than 50 bars
//	of history exist.
//
// The price score is the 0.5/0.3/0.2 weighted sum of the three. The
// combined score adds a volume signal (recent average volume against a
// trailing baseline) and an earnings signal (mean surprise of the last
// earningsLookback events), again weighted 0.5/0.3/0.2. Degenerate inputs
// (zero prices, zero-width band, missing data) score neutral rather than
// failing. Since every signal lies in [0,100] and the weights sum to 1,
// the result is always in [0,100].
const (
	returnWindow         = 10
	crossoverShort       = 20
	crossoverLong        = 50
	recentVolumeWindow   = 5
	baselineVolumeWindow = 30
	earningsLookback     = 3

	returnScale    = 250 // 50 + 250*r: r = +/-0.20 saturates
	crossoverScale = 500 // 50 + 500*d: d = +/-0.10 saturates
	surpriseScale  = 5   // 50 + 5*s: s = +/-10 points saturates

	weightReturn    = 0.5
	weightBand      = 0.3
	weightCrossover = 0.2

	weightPrice    = 0.5
	weightVolume   = 0.3
	weightEarnings = 0.2
)

// TrendScore is the bounded momentum summary for a series. All fields are
// in [0,100]; Combined is the value ranked and rendered by consumers.
type TrendScore struct {
	Price    float64
	Volume   float64
	Earnings float64
	Combined float64
}

// ComputeTrendScore returns the combined trend score for a series without
// earnings context. The result is always within [0,100] and is monotone
// nondecreasing in the recent return, all other inputs held constant.
func ComputeTrendScore(s Series) (float64, error) {
	ts, err := ComputeTrendScores(s, nil)
	if err != nil {
		return 0, err
	}
	return ts.Combined, nil
}

// ComputeTrendScores returns the full score decomposition, folding recent
// earnings surprises into the combined value. An empty series fails with
// ErrInsufficientData.
func ComputeTrendScores(s Series, events []EarningsEvent) (TrendScore, error) {
	if err := s.Validate(); err != nil {
		return TrendScore{}, err
	}
	return computeTrendScores(s, events)
}

func computeTrendScores(s Series, events []EarningsEvent) (TrendScore, error) {
	if len(s) == 0 {
		return TrendScore{}, ErrInsufficientData
	}

	sr, err := computeSupportResistance(s, DefaultLookback)
	if err != nil {
		return TrendScore{}, err
	}

	price := weightReturn*returnSignal(s) +
		weightBand*bandSignal(s, sr) +
		weightCrossover*crossoverSignal(s)
	volume := volumeSignal(s)
	earnings := earningsSignal(events)

	combined := weightPrice*price + weightVolume*volume + weightEarnings*earnings

	return TrendScore{
		Price:    clampScore(price),
		Volume:   volume,
		Earnings: earnings,
		Combined: clampScore(combined),
	}, nil
}

// returnSignal scores the percent change of close over the trailing
// returnWindow bars, falling back to the full series when shorter.
func returnSignal(s Series) float64 {
	base := s[0].Close
	if len(s) > returnWindow {
		base = s[len(s)-1-returnWindow].Close
	}
	if base == 0 {
		return 50
	}
	r := (s[len(s)-1].Close - base) / base
	return clampScore(50 + returnScale*r)
}

// bandSignal scores where the last close sits inside the primary
// support/resistance band.
func bandSignal(s Series, sr SupportResistance) float64 {
	width := sr.Resistance1 - sr.Support1
	if width <= 0 {
		return 50
	}
	pos := (s[len(s)-1].Close - sr.Support1) / width
	return clampScore(pos * 100)
}

// crossoverSignal scores the ma20-vs-ma50 spread at the last bar.
func crossoverSignal(s Series) float64 {
	if len(s) < crossoverLong {
		return 50
	}
	closes := s.closes()
	short := mean(closes[len(closes)-crossoverShort:])
	long := mean(closes[len(closes)-crossoverLong:])
	if long == 0 {
		return 50
	}
	d := (short - long) / long
	return clampScore(50 + crossoverScale*d)
}

// volumeSignal compares the recent average volume against a trailing
// baseline. A ratio of 1 is neutral; doubling saturates the signal.
func volumeSignal(s Series) float64 {
	n := len(s)
	recentStart := n - recentVolumeWindow
	if recentStart < 0 {
		recentStart = 0
	}
	recent := meanVolume(s[recentStart:])

	var baseline float64
	if n > baselineVolumeWindow {
		baseline = meanVolume(s[n-baselineVolumeWindow : n-recentVolumeWindow])
	} else {
		baseline = meanVolume(s)
	}
	if baseline <= 0 {
		return 50
	}
	return clampScore(50 * recent / baseline)
}

// earningsSignal scores the mean surprise percent of the most recent
// earningsLookback events carrying a surprise. No usable events is neutral.
func earningsSignal(events []EarningsEvent) float64 {
	var sum float64
	var count int
	for i := len(events) - 1; i >= 0 && count < earningsLookback; i-- {
		if events[i].SurprisePercent == nil {
			continue
		}
		sum += *events[i].SurprisePercent
		count++
	}
	if count == 0 {
		return 50
	}
	return clampScore(50 + surpriseScale*sum/float64(count))
}

func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func meanVolume(bars []Bar) float64 {
	if len(bars) == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bars {
		sum += float64(b.Volume)
	}
	return sum / float64(len(bars))
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
