package dto

// TrendingItem is one ranked stock in the /api/trending listing.
type TrendingItem struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector,omitempty"`
	Date          string  `json:"date"`
	CombinedScore float64 `json:"combinedScore"`
	PriceScore    float64 `json:"priceScore"`
	VolumeScore   float64 `json:"volumeScore"`
	EarningsScore float64 `json:"earningsScore"`
}

// TrendingResponse wraps the trending ranking with its count.
type TrendingResponse struct {
	Count  int            `json:"count"`
	Stocks []TrendingItem `json:"stocks"`
}
