// Package di provides dependency injection factories for creating application components.
package di

import (
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/externalapi/alphavantage"
	infrahttp "stock_dashboard/internal/platform/http"
)

// NewMarket creates a fully configured AlphaVantageMarket with HTTP client.
func NewMarket(cfg *config.Config) *alphavantage.AlphaVantageMarket {
	avCfg := alphavantage.Config{
		APIKey:  cfg.AlphaVantageAPIKey,
		BaseURL: cfg.AlphaVantageBaseURL,
		Timeout: cfg.HTTPTimeout,
	}
	httpClient := infrahttp.NewHTTPClient(avCfg.Timeout)
	return alphavantage.NewAlphaVantageMarket(avCfg, httpClient)
}
