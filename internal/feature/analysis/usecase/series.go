package usecase

import (
	"stock_dashboard/internal/feature/analysis/engine"
	earningsentity "stock_dashboard/internal/feature/earnings/domain/entity"
	pricesentity "stock_dashboard/internal/feature/prices/domain/entity"
)

// toSeries converts persisted bars (date ascending) into an engine series.
func toSeries(bars []pricesentity.Bar) engine.Series {
	s := make(engine.Series, len(bars))
	for i, b := range bars {
		s[i] = engine.Bar{
			Date:   b.Date,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return s
}

// toEngineEvents converts persisted earnings events into engine events.
func toEngineEvents(events []earningsentity.EarningsEvent) []engine.EarningsEvent {
	out := make([]engine.EarningsEvent, len(events))
	for i, e := range events {
		out[i] = engine.EarningsEvent{
			Date:            e.AnnouncementDate,
			SurprisePercent: e.SurprisePercent,
		}
	}
	return out
}
