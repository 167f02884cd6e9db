// Package dto defines the HTTP response shapes for the stocks feature.
package dto

// StockItem is one stock in the /api/stocks listing.
type StockItem struct {
	Ticker      string  `json:"ticker"`
	CompanyName string  `json:"name"`
	Sector      string  `json:"sector,omitempty"`
	Industry    string  `json:"industry,omitempty"`
	Country     string  `json:"country,omitempty"`
	MarketCap   float64 `json:"marketCap,omitempty"`
}

// StockListResponse wraps the stock listing with its count.
type StockListResponse struct {
	Count  int         `json:"count"`
	Stocks []StockItem `json:"stocks"`
}
