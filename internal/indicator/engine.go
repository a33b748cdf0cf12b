package indicator

import (
	"fmt"

	"StockScope/internal/domain/models"
)

// MinBars is the shortest series the engine accepts. Satisfying it via
// the gateway fallback policy is the caller's responsibility.
const MinBars = 15

const rsiPeriod = 14

// BandPolicy names the suggested trade-band formula. The two variants
// come from different revisions of the heuristic; exactly one is applied
// per deployment, chosen by configuration.
type BandPolicy string

const (
	// BandCloseRelative anchors the band on the latest close:
	// entry 0.98x, target 1.08x, stop 0.94x.
	BandCloseRelative BandPolicy = "close_relative"

	// BandPivotRelative anchors the band on the pivot point:
	// entry [0.98p, 1.02p], target [R1, 2*R1-p], stop S1.
	BandPivotRelative BandPolicy = "pivot_relative"
)

// ParseBandPolicy validates a configured policy name.
func ParseBandPolicy(s string) (BandPolicy, error) {
	switch BandPolicy(s) {
	case BandCloseRelative, BandPivotRelative:
		return BandPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown band policy %q", s)
	}
}

// Engine computes a TradePlan from an OHLC series.
type Engine struct {
	policy BandPolicy
}

func NewEngine(policy BandPolicy) *Engine {
	return &Engine{policy: policy}
}

// Compute derives the full indicator set and suggested levels. The
// series must have at least MinBars bars; shorter input fails with
// models.ErrInsufficientData. No rounding happens here.
func (e *Engine) Compute(series *models.OHLCSeries) (*models.TradePlan, error) {
	if series.Len() < MinBars {
		return nil, fmt.Errorf("%w: got %d bars, need %d", models.ErrInsufficientData, series.Len(), MinBars)
	}

	closes := series.Closes()
	lastClose := closes[len(closes)-1]
	high, low := series.HighLow()

	rsi, err := RSI(closes, rsiPeriod)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInsufficientData, err)
	}

	pivot, r1, s1 := PivotPoints(high, low, lastClose)

	plan := &models.TradePlan{
		Symbol:    series.Symbol,
		Interval:  series.Interval,
		LastClose: lastClose,
		Valuation: valuation(lastClose, high, low),
		Indicators: models.IndicatorSet{
			RSI14:       rsi,
			MA20:        smaOrNil(closes, 20),
			MA50:        smaOrNil(closes, 50),
			MA200:       smaOrNil(closes, 200),
			Pivot:       pivot,
			R1:          r1,
			S1:          s1,
			Fib:         FibRetracement(high, low),
			HighOverall: high,
			LowOverall:  low,
		},
	}

	switch e.policy {
	case BandPivotRelative:
		plan.Entry = models.PriceRange{Low: 0.98 * pivot, High: 1.02 * pivot}
		plan.Target = models.PriceRange{Low: r1, High: r1 + (r1 - pivot)}
		plan.StopLoss = s1
	default: // close_relative
		entry := 0.98 * lastClose
		target := 1.08 * lastClose
		plan.Entry = models.PriceRange{Low: entry, High: entry}
		plan.Target = models.PriceRange{Low: target, High: target}
		plan.StopLoss = 0.94 * lastClose
	}

	return plan, nil
}

func valuation(lastClose, high, low float64) string {
	switch {
	case lastClose >= 0.95*high:
		return models.ValuationNearHighs
	case lastClose <= 1.05*low:
		return models.ValuationNearLows
	default:
		return models.ValuationMidRange
	}
}
