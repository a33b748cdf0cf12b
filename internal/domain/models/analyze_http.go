package models

import "StockScope/pkg/util"

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

type AnalyzeRequest struct {
	Query    string `query:"q" json:"q" validate:"required,min=1"`
	Interval string `query:"interval" json:"interval" default:"1d" validate:"oneof=1d 1wk 1mo"`
}

type SuggestRequest struct {
	Query string `query:"q" json:"q" validate:"required,min=1"`
	Limit int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=20"`
}

// AnalyzeResponse is the user-facing analysis result: trade plan plus
// indicator set plus the OHLC series for charting. All prices are
// rounded to 2 decimals here, at the point of display.
type AnalyzeResponse struct {
	Symbol     string       `json:"symbol"`
	Name       string       `json:"name,omitempty"`
	Interval   string       `json:"interval"`
	Sector     string       `json:"sector,omitempty"`
	Strong     bool         `json:"fundamentally_strong"`
	LastClose  float64      `json:"last_close"`
	Entry      PriceRange   `json:"entry"`
	Target     PriceRange   `json:"target"`
	StopLoss   float64      `json:"stop_loss"`
	Valuation  string       `json:"valuation"`
	Indicators IndicatorSet `json:"indicators"`
	Series     []PriceBar   `json:"series"`
}

// NewAnalyzeResponse assembles the display form of an analysis result.
func NewAnalyzeResponse(plan *TradePlan, verdict Verdict, name string, series *OHLCSeries) *AnalyzeResponse {
	fib := make([]FibLevel, len(plan.Indicators.Fib))
	for i, f := range plan.Indicators.Fib {
		fib[i] = FibLevel{Ratio: f.Ratio, Price: util.Round2(f.Price)}
	}

	return &AnalyzeResponse{
		Symbol:    plan.Symbol,
		Name:      name,
		Interval:  plan.Interval,
		Sector:    verdict.Sector,
		Strong:    verdict.Strong,
		LastClose: util.Round2(plan.LastClose),
		Entry:     PriceRange{Low: util.Round2(plan.Entry.Low), High: util.Round2(plan.Entry.High)},
		Target:    PriceRange{Low: util.Round2(plan.Target.Low), High: util.Round2(plan.Target.High)},
		StopLoss:  util.Round2(plan.StopLoss),
		Valuation: plan.Valuation,
		Indicators: IndicatorSet{
			RSI14:       util.Round2(plan.Indicators.RSI14),
			MA20:        util.Round2Ptr(plan.Indicators.MA20),
			MA50:        util.Round2Ptr(plan.Indicators.MA50),
			MA200:       util.Round2Ptr(plan.Indicators.MA200),
			Pivot:       util.Round2(plan.Indicators.Pivot),
			R1:          util.Round2(plan.Indicators.R1),
			S1:          util.Round2(plan.Indicators.S1),
			Fib:         fib,
			HighOverall: util.Round2(plan.Indicators.HighOverall),
			LowOverall:  util.Round2(plan.Indicators.LowOverall),
		},
		Series: series.Bars,
	}
}
