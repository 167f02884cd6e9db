// Package handler provides the HTTP handlers for the stocks feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/transport/http/dto"
)

// StockUsecase defines the usecase interface for stock metadata.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type StockUsecase interface {
	ListActiveStocks(ctx context.Context) ([]entity.Stock, error)
}

// StockHandler handles HTTP requests for stock metadata.
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler creates a new StockHandler with the given usecase.
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List returns all active stocks as JSON.
//
// GET /api/stocks
func (h *StockHandler) List(c *gin.Context) {
	stocks, err := h.uc.ListActiveStocks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.StockItem{
			Ticker:      s.Ticker,
			CompanyName: s.CompanyName,
			Sector:      s.Sector,
			Industry:    s.Industry,
			Country:     s.Country,
			MarketCap:   s.MarketCap,
		})
	}
	c.JSON(http.StatusOK, dto.StockListResponse{Count: len(out), Stocks: out})
}
