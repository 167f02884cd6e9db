// Package router wires the HTTP routes for the dashboard server.
package router

import (
	analysishandler "stock_dashboard/internal/feature/analysis/transport/handler"
	stockshandler "stock_dashboard/internal/feature/stocks/transport/handler"
	"stock_dashboard/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every page and API route.
func NewRouter(page *analysishandler.PageHandler, stocks *stockshandler.StockHandler,
	chart *analysishandler.ChartHandler, trending *analysishandler.TrendingHandler) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*")
	r.Static("/static", "web/static")

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// Server-rendered dashboard
	r.GET("/", page.Index)

	api := r.Group("/api")
	{
		api.GET("/stocks", stocks.List)
		api.GET("/stocks/:ticker", chart.GetChart)
		api.GET("/trending", trending.List)
	}

	return r
}
