package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/analysis/transport/http/dto"
	"stock_dashboard/internal/feature/analysis/usecase"
)

// PageHandler renders the server-side dashboard pages.
type PageHandler struct {
	uc TrendingUsecase
}

// NewPageHandler creates a new PageHandler with the given usecase.
func NewPageHandler(uc TrendingUsecase) *PageHandler {
	return &PageHandler{uc: uc}
}

// Index renders the landing page with the current trending table. The
// chart widget on the page loads its data from the JSON API. A ranking
// failure still renders the page, just without rows.
//
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	ranked, err := h.uc.Trending(c.Request.Context(), usecase.DefaultTrendingLimit)
	if err != nil {
		slog.Error("failed to load trending for index page", "error", err)
	}

	items := make([]dto.TrendingItem, 0, len(ranked))
	for _, r := range ranked {
		items = append(items, toTrendingItem(r))
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Stocks": items})
}
