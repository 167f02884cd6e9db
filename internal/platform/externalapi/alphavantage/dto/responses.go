// Package dto defines data transfer objects for the Alpha Vantage API responses.
package dto

// DailySeriesResponse represents the JSON response from the
// TIME_SERIES_DAILY_ADJUSTED function. Alpha Vantage reports errors and
// rate limiting inside a 200 response, so those fields ride along.
type DailySeriesResponse struct {
	ErrorMessage string              `json:"Error Message,omitempty"`
	Note         string              `json:"Note,omitempty"`
	Information  string              `json:"Information,omitempty"`
	TimeSeries   map[string]DailyBar `json:"Time Series (Daily)"`
}

// DailyBar is one day of OHLCV data keyed by the API's numbered field names.
type DailyBar struct {
	Open          string `json:"1. open"`
	High          string `json:"2. high"`
	Low           string `json:"3. low"`
	Close         string `json:"4. close"`
	AdjustedClose string `json:"5. adjusted close"`
	Volume        string `json:"6. volume"`
}

// OverviewResponse represents the JSON response from the OVERVIEW function.
// An unknown ticker comes back as an empty object with a 200 status.
type OverviewResponse struct {
	ErrorMessage string `json:"Error Message,omitempty"`
	Note         string `json:"Note,omitempty"`
	Information  string `json:"Information,omitempty"`

	Symbol               string `json:"Symbol"`
	Name                 string `json:"Name"`
	Sector               string `json:"Sector"`
	Industry             string `json:"Industry"`
	Country              string `json:"Country"`
	MarketCapitalization string `json:"MarketCapitalization"`
}

// EarningsResponse represents the JSON response from the EARNINGS function.
type EarningsResponse struct {
	ErrorMessage string `json:"Error Message,omitempty"`
	Note         string `json:"Note,omitempty"`
	Information  string `json:"Information,omitempty"`

	Symbol            string             `json:"symbol"`
	QuarterlyEarnings []QuarterlyEarning `json:"quarterlyEarnings"`
}

// QuarterlyEarning is one quarterly report. Numeric fields arrive as
// strings and may be the literal "None".
type QuarterlyEarning struct {
	FiscalDateEnding   string `json:"fiscalDateEnding"`
	ReportedDate       string `json:"reportedDate"`
	ReportedEPS        string `json:"reportedEPS"`
	EstimatedEPS       string `json:"estimatedEPS"`
	Surprise           string `json:"surprise"`
	SurprisePercentage string `json:"surprisePercentage"`
}
