// Package handler provides the HTTP handlers for the analysis feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/analysis/engine"
	"stock_dashboard/internal/feature/analysis/transport/http/dto"
	"stock_dashboard/internal/feature/analysis/usecase"
)

// dateFormat is the ISO date layout used across chart payloads.
const dateFormat = "2006-01-02"

// ChartUsecase defines the usecase interface for chart payloads.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ChartUsecase interface {
	GetChart(ctx context.Context, ticker string, outputsize int) (usecase.ChartData, error)
}

// ChartHandler handles HTTP requests for per-ticker chart payloads.
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler creates a new ChartHandler with the given usecase.
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// GetChart returns the chart payload for one ticker.
//
// GET /api/stocks/:ticker?outputsize=200
func (h *ChartHandler) GetChart(c *gin.Context) {
	ticker := c.Param("ticker")
	outputsize, _ := strconv.Atoi(c.DefaultQuery("outputsize", "200"))

	data, err := h.uc.GetChart(c.Request.Context(), ticker, outputsize)
	switch {
	case errors.Is(err, usecase.ErrUnknownTicker):
		c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
		return
	case errors.Is(err, engine.ErrInsufficientData):
		c.JSON(http.StatusNotFound, gin.H{"error": "no price history"})
		return
	case errors.Is(err, engine.ErrMalformedSeries):
		// Stored data is broken; surface it instead of charting wrong numbers.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toChartResponse(data))
}

func toChartResponse(data usecase.ChartData) dto.ChartResponse {
	n := len(data.Bars)
	out := dto.ChartResponse{
		Ticker: data.Stock.Ticker,
		Name:   data.Stock.CompanyName,
		Dates:  make([]string, n),
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]int64, n),
		MA20:   data.Indicators.MA20,
		MA50:   data.Indicators.MA50,
		MA200:  data.Indicators.MA200,
		SupportResistance: dto.SupportResistanceDTO{
			Support1:         data.Indicators.SupportResistance.Support1,
			Support2:         data.Indicators.SupportResistance.Support2,
			Resistance1:      data.Indicators.SupportResistance.Resistance1,
			Resistance2:      data.Indicators.SupportResistance.Resistance2,
			FiftyTwoWeekHigh: data.Indicators.SupportResistance.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  data.Indicators.SupportResistance.FiftyTwoWeekLow,
		},
		TrendScore: dto.TrendScoreDTO{
			Price:    data.Indicators.TrendScore.Price,
			Volume:   data.Indicators.TrendScore.Volume,
			Earnings: data.Indicators.TrendScore.Earnings,
			Combined: data.Indicators.TrendScore.Combined,
			Version:  engine.TrendScoreVersion,
		},
		EarningsDates: make([]string, len(data.Indicators.EarningsDates)),
	}

	for i, b := range data.Bars {
		out.Dates[i] = b.Date.UTC().Format(dateFormat)
		out.Open[i] = b.Open
		out.High[i] = b.High
		out.Low[i] = b.Low
		out.Close[i] = b.Close
		out.Volume[i] = b.Volume
	}
	for i, d := range data.Indicators.EarningsDates {
		out.EarningsDates[i] = d.UTC().Format(dateFormat)
	}
	return out
}
