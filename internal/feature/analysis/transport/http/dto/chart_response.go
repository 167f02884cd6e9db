// Package dto defines the HTTP response shapes for the analysis feature.
package dto

// SupportResistanceDTO carries the derived price levels of a chart payload.
type SupportResistanceDTO struct {
	Support1         float64 `json:"support1"`
	Support2         float64 `json:"support2"`
	Resistance1      float64 `json:"resistance1"`
	Resistance2      float64 `json:"resistance2"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
}

// TrendScoreDTO carries the bounded trend scores of a chart payload.
type TrendScoreDTO struct {
	Price    float64 `json:"price"`
	Volume   float64 `json:"volume"`
	Earnings float64 `json:"earnings"`
	Combined float64 `json:"combined"`
	Version  int     `json:"version"`
}

// ChartResponse is the full payload the chart widget consumes. The arrays
// are parallel, one element per trading day in ascending date order; the
// moving averages hold null while there is not enough history.
type ChartResponse struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`

	Dates  []string  `json:"dates"`
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`

	MA20  []*float64 `json:"ma20"`
	MA50  []*float64 `json:"ma50"`
	MA200 []*float64 `json:"ma200"`

	SupportResistance SupportResistanceDTO `json:"supportResistance"`
	TrendScore        TrendScoreDTO        `json:"trendScore"`

	// EarningsDates are ISO dates within the displayed range, for overlay markers.
	EarningsDates []string `json:"earningsDates"`
}
