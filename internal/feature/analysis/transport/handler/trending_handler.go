package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/analysis/transport/http/dto"
	"stock_dashboard/internal/feature/analysis/usecase"
)

// TrendingUsecase defines the usecase interface for the trend-score ranking.
type TrendingUsecase interface {
	Trending(ctx context.Context, limit int) ([]usecase.TrendingStock, error)
}

// TrendingHandler handles HTTP requests for the trend-score ranking.
type TrendingHandler struct {
	uc TrendingUsecase
}

// NewTrendingHandler creates a new TrendingHandler with the given usecase.
func NewTrendingHandler(uc TrendingUsecase) *TrendingHandler {
	return &TrendingHandler{uc: uc}
}

// List returns the top stocks ranked by combined trend score.
//
// GET /api/trending?limit=20
func (h *TrendingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	ranked, err := h.uc.Trending(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.TrendingItem, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, toTrendingItem(r))
	}
	c.JSON(http.StatusOK, dto.TrendingResponse{Count: len(out), Stocks: out})
}

func toTrendingItem(r usecase.TrendingStock) dto.TrendingItem {
	return dto.TrendingItem{
		Ticker:        r.Stock.Ticker,
		Name:          r.Stock.CompanyName,
		Sector:        r.Stock.Sector,
		Date:          r.Snapshot.Date.UTC().Format(dateFormat),
		CombinedScore: r.Snapshot.CombinedScore,
		PriceScore:    r.Snapshot.PriceScore,
		VolumeScore:   r.Snapshot.VolumeScore,
		EarningsScore: r.Snapshot.EarningsScore,
	}
}
