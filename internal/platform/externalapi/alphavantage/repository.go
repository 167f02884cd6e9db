package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	collectorusecase "stock_dashboard/internal/feature/collector/usecase"
	earningsentity "stock_dashboard/internal/feature/earnings/domain/entity"
	pricesentity "stock_dashboard/internal/feature/prices/domain/entity"
	stocksentity "stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/platform/externalapi/alphavantage/dto"
)

// dateFormat is the ISO date layout used by every Alpha Vantage endpoint.
const dateFormat = "2006-01-02"

// AlphaVantageMarket fetches stock data from the Alpha Vantage API.
type AlphaVantageMarket struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that AlphaVantageMarket implements MarketRepository.
var _ collectorusecase.MarketRepository = (*AlphaVantageMarket)(nil)

// NewAlphaVantageMarket creates a new AlphaVantageMarket with the given
// configuration and HTTP client.
func NewAlphaVantageMarket(cfg Config, client *http.Client) *AlphaVantageMarket {
	return &AlphaVantageMarket{cfg: cfg, client: client}
}

// get performs one query call and decodes the JSON body into out.
func (a *AlphaVantageMarket) get(ctx context.Context, function, ticker string, extra url.Values, out any) error {
	q := url.Values{}
	q.Set("function", function)
	q.Set("symbol", ticker)
	q.Set("apikey", a.cfg.APIKey)
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	u := fmt.Sprintf("%s/query?%s", a.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// apiError surfaces the error, rate-limit note, or premium notice that
// Alpha Vantage hides inside a 200 response.
func apiError(errorMessage, note, information string) error {
	switch {
	case errorMessage != "":
		return fmt.Errorf("alphavantage: %s", errorMessage)
	case note != "":
		return fmt.Errorf("alphavantage rate limited: %s", note)
	case information != "":
		return fmt.Errorf("alphavantage: %s", information)
	}
	return nil
}

// GetOverview fetches company metadata for the ticker.
func (a *AlphaVantageMarket) GetOverview(ctx context.Context, ticker string) (stocksentity.Stock, error) {
	var body dto.OverviewResponse
	if err := a.get(ctx, "OVERVIEW", ticker, nil, &body); err != nil {
		return stocksentity.Stock{}, err
	}
	if err := apiError(body.ErrorMessage, body.Note, body.Information); err != nil {
		return stocksentity.Stock{}, err
	}
	if body.Symbol == "" {
		// Unknown tickers come back as an empty object.
		return stocksentity.Stock{}, fmt.Errorf("alphavantage: no overview for %q", ticker)
	}

	// MarketCapitalization is "None" for funds; treat it as unknown.
	marketCap, _ := strconv.ParseFloat(body.MarketCapitalization, 64)

	return stocksentity.Stock{
		Ticker:      body.Symbol,
		CompanyName: body.Name,
		Sector:      body.Sector,
		Industry:    body.Industry,
		Country:     body.Country,
		MarketCap:   marketCap,
	}, nil
}

// GetDailySeries fetches up to outputsize of the most recent daily bars
// for the ticker, ordered by date ascending.
func (a *AlphaVantageMarket) GetDailySeries(ctx context.Context, ticker string, outputsize int) ([]pricesentity.Bar, error) {
	// The API only knows "compact" (100 bars) and "full"; fetch full
	// whenever more than compact is wanted and trim afterwards.
	size := "compact"
	if outputsize > 100 {
		size = "full"
	}
	extra := url.Values{}
	extra.Set("outputsize", size)

	var body dto.DailySeriesResponse
	if err := a.get(ctx, "TIME_SERIES_DAILY_ADJUSTED", ticker, extra, &body); err != nil {
		return nil, err
	}
	if err := apiError(body.ErrorMessage, body.Note, body.Information); err != nil {
		return nil, err
	}

	bars := make([]pricesentity.Bar, 0, len(body.TimeSeries))
	for date, v := range body.TimeSeries {
		d, err := time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		adj, err := strconv.ParseFloat(v.AdjustedClose, 64)
		if err != nil {
			return nil, fmt.Errorf("parse adjusted close %q: %w", v.AdjustedClose, err)
		}
		vol, err := strconv.ParseInt(v.Volume, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
		}

		bars = append(bars, pricesentity.Bar{
			Ticker:        ticker,
			Date:          d,
			Open:          o,
			High:          h,
			Low:           l,
			Close:         c,
			AdjustedClose: adj,
			Volume:        vol,
		})
	}

	// The time series arrives as a JSON object, so order it explicitly.
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	if outputsize > 0 && len(bars) > outputsize {
		bars = bars[len(bars)-outputsize:]
	}
	return bars, nil
}

// GetEarnings fetches the quarterly earnings history for the ticker.
// Quarters with an unparseable report date are skipped; "None" numeric
// fields become nil.
func (a *AlphaVantageMarket) GetEarnings(ctx context.Context, ticker string) ([]earningsentity.EarningsEvent, error) {
	var body dto.EarningsResponse
	if err := a.get(ctx, "EARNINGS", ticker, nil, &body); err != nil {
		return nil, err
	}
	if err := apiError(body.ErrorMessage, body.Note, body.Information); err != nil {
		return nil, err
	}

	events := make([]earningsentity.EarningsEvent, 0, len(body.QuarterlyEarnings))
	for _, q := range body.QuarterlyEarnings {
		reported, err := time.Parse(dateFormat, q.ReportedDate)
		if err != nil {
			slog.Warn("skipping earnings report with bad date", "ticker", ticker, "date", q.ReportedDate)
			continue
		}
		ev := earningsentity.EarningsEvent{
			Ticker:           ticker,
			AnnouncementDate: reported,
			ReportedEPS:      parseOptionalFloat(q.ReportedEPS),
			EstimatedEPS:     parseOptionalFloat(q.EstimatedEPS),
			Surprise:         parseOptionalFloat(q.Surprise),
			SurprisePercent:  parseOptionalFloat(q.SurprisePercentage),
		}
		if ending, err := time.Parse(dateFormat, q.FiscalDateEnding); err == nil {
			ev.PeriodEnding = &ending
		}
		events = append(events, ev)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].AnnouncementDate.Before(events[j].AnnouncementDate)
	})
	return events, nil
}

func parseOptionalFloat(s string) *float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
