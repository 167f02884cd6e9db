package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	analysisentity "stock_dashboard/internal/feature/analysis/domain/entity"
	"stock_dashboard/internal/feature/analysis/transport/handler"
	"stock_dashboard/internal/feature/analysis/usecase"
	stocksentity "stock_dashboard/internal/feature/stocks/domain/entity"
)

// mockTrendingUsecase is a mock implementation of the TrendingUsecase interface.
type mockTrendingUsecase struct {
	TrendingFunc func(ctx context.Context, limit int) ([]usecase.TrendingStock, error)
}

func (m *mockTrendingUsecase) Trending(ctx context.Context, limit int) ([]usecase.TrendingStock, error) {
	return m.TrendingFunc(ctx, limit)
}

func TestTrendingHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	ranked := []usecase.TrendingStock{
		{
			Stock: stocksentity.Stock{Ticker: "MSFT", CompanyName: "Microsoft Corporation", Sector: "Technology"},
			Snapshot: analysisentity.IndicatorSnapshot{
				Ticker:        "MSFT",
				Date:          testDate,
				CombinedScore: 70.5,
				PriceScore:    80,
				VolumeScore:   60,
				EarningsScore: 55,
			},
		},
		{
			Stock: stocksentity.Stock{Ticker: "AAPL", CompanyName: "Apple Inc.", Sector: "Technology"},
			Snapshot: analysisentity.IndicatorSnapshot{
				Ticker:        "AAPL",
				Date:          testDate,
				CombinedScore: 55,
				PriceScore:    50,
				VolumeScore:   65,
				EarningsScore: 50,
			},
		},
	}

	tests := []struct {
		name           string
		url            string
		mockTrending   func(ctx context.Context, limit int) ([]usecase.TrendingStock, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: ranked stocks with explicit limit",
			url:  "/api/trending?limit=5",
			mockTrending: func(ctx context.Context, limit int) ([]usecase.TrendingStock, error) {
				assert.Equal(t, 5, limit)
				return ranked, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"count": 2,
				"stocks": [
					{"ticker":"MSFT","name":"Microsoft Corporation","sector":"Technology","date":"2024-06-15","combinedScore":70.5,"priceScore":80,"volumeScore":60,"earningsScore":55},
					{"ticker":"AAPL","name":"Apple Inc.","sector":"Technology","date":"2024-06-15","combinedScore":55,"priceScore":50,"volumeScore":65,"earningsScore":50}
				]
			}`,
		},
		{
			name: "success: default limit",
			url:  "/api/trending",
			mockTrending: func(ctx context.Context, limit int) ([]usecase.TrendingStock, error) {
				assert.Equal(t, 20, limit)
				return []usecase.TrendingStock{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"count":0,"stocks":[]}`,
		},
		{
			name: "edge case: invalid limit string passes zero to the usecase",
			url:  "/api/trending?limit=invalid",
			mockTrending: func(ctx context.Context, limit int) ([]usecase.TrendingStock, error) {
				// Normalization to the default happens in the usecase layer.
				assert.Equal(t, 0, limit)
				return []usecase.TrendingStock{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"count":0,"stocks":[]}`,
		},
		{
			name: "error: usecase failure returns 500",
			url:  "/api/trending",
			mockTrending: func(ctx context.Context, limit int) ([]usecase.TrendingStock, error) {
				return nil, errors.New("db gone")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"db gone"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewTrendingHandler(&mockTrendingUsecase{TrendingFunc: tt.mockTrending})

			router := gin.New()
			router.GET("/api/trending", h.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
