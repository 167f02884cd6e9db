// Package entity defines the domain models for the prices feature.
package entity

import "time"

// Bar represents one trading day of OHLCV (Open, High, Low, Close, Volume)
// data for a stock ticker.
type Bar struct {
	Ticker        string    // Stock ticker symbol (e.g., "AAPL")
	Date          time.Time // Trading day, midnight UTC
	Open          float64   // Opening price
	High          float64   // Highest price of the day
	Low           float64   // Lowest price of the day
	Close         float64   // Closing price
	AdjustedClose float64   // Close adjusted for splits and dividends
	Volume        int64     // Traded volume
}
