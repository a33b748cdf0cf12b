package models

// Valuation comments reported with a trade plan.
const (
	ValuationNearHighs = "near highs"
	ValuationNearLows  = "near lows"
	ValuationMidRange  = "mid-range"
)

// PriceRange is an inclusive price band. Single-point bands carry the
// same value in both fields.
type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// FibLevel is one Fibonacci retracement level.
type FibLevel struct {
	Ratio float64 `json:"ratio"`
	Price float64 `json:"price"`
}

// IndicatorSet holds the computed technical indicators for one series.
// Moving averages are nil when the series is shorter than their window,
// so the presentation layer can skip the overlay instead of drawing zero.
type IndicatorSet struct {
	RSI14       float64    `json:"rsi14"`
	MA20        *float64   `json:"ma20,omitempty"`
	MA50        *float64   `json:"ma50,omitempty"`
	MA200       *float64   `json:"ma200,omitempty"`
	Pivot       float64    `json:"pivot"`
	R1          float64    `json:"r1"`
	S1          float64    `json:"s1"`
	Fib         []FibLevel `json:"fib"`
	HighOverall float64    `json:"high_overall"`
	LowOverall  float64    `json:"low_overall"`
}

// TradePlan is the derived, immutable result of one analysis request.
// Values are unrounded; 2-dp rounding happens at the response boundary.
type TradePlan struct {
	Symbol     string       `json:"symbol"`
	Interval   string       `json:"interval"`
	LastClose  float64      `json:"last_close"`
	Entry      PriceRange   `json:"entry"`
	Target     PriceRange   `json:"target"`
	StopLoss   float64      `json:"stop_loss"`
	Valuation  string       `json:"valuation"`
	Indicators IndicatorSet `json:"indicators"`
}
