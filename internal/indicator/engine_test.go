package indicator

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockScope/internal/domain/models"
)

func seriesFromCloses(closes []float64) *models.OHLCSeries {
	bars := make([]models.PriceBar, len(closes))
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = models.PriceBar{
			Time:  t0.AddDate(0, 0, i),
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
	}
	return &models.OHLCSeries{Symbol: "TEST", Interval: "1d", Bars: bars}
}

func increasingCloses(n int, start float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)
	}
	return closes
}

func TestRSI_AllGainsSaturates(t *testing.T) {
	rsi, err := RSI(increasingCloses(20, 100), 14)
	if err != nil {
		t.Fatal(err)
	}
	if rsi != 100.0 {
		t.Errorf("expected RSI 100 for all gains, got %.4f", rsi)
	}
}

func TestRSI_AllLossesSaturates(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	rsi, err := RSI(closes, 14)
	if err != nil {
		t.Fatal(err)
	}
	if rsi != 0.0 {
		t.Errorf("expected RSI 0 for all losses, got %.4f", rsi)
	}
}

func TestRSI_Bounded(t *testing.T) {
	closes := []float64{100, 103, 99, 104, 98, 105, 97, 106, 101, 102, 100, 104, 99, 103, 101, 100}
	rsi, err := RSI(closes, 14)
	if err != nil {
		t.Fatal(err)
	}
	if rsi < 0 || rsi > 100 {
		t.Errorf("RSI out of bounds: %.4f", rsi)
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	if _, err := RSI(increasingCloses(14, 100), 14); err == nil {
		t.Error("expected error for series shorter than period+1")
	}
}

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	got, err := SMA(closes, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4.0 {
		t.Errorf("expected SMA 4.0, got %.4f", got)
	}
	if _, err := SMA(closes, 6); err == nil {
		t.Error("expected error for window larger than series")
	}
}

func TestPivotSymmetry(t *testing.T) {
	tests := []struct {
		high, low, close float64
	}{
		{120, 80, 100},
		{119, 100, 119},
		{5500, 5200, 5350},
		{10, 10, 10},
	}
	for _, tt := range tests {
		pivot, r1, s1 := PivotPoints(tt.high, tt.low, tt.close)
		if d := (r1 - pivot) - (pivot - s1); math.Abs(d) > 1e-9 {
			t.Errorf("high=%.0f low=%.0f close=%.0f: R1-P=%.6f P-S1=%.6f", tt.high, tt.low, tt.close, r1-pivot, pivot-s1)
		}
	}
}

func TestFibMonotonic(t *testing.T) {
	levels := FibRetracement(150, 90)
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].Price >= levels[i-1].Price {
			t.Errorf("levels not strictly decreasing: %.4f then %.4f", levels[i-1].Price, levels[i].Price)
		}
	}
	for _, l := range levels {
		if l.Price < 90 || l.Price > 150 {
			t.Errorf("level %.3f=%.4f outside [low, high]", l.Ratio, l.Price)
		}
	}
}

func TestCompute_TwentyIncreasingBars(t *testing.T) {
	e := NewEngine(BandCloseRelative)
	series := seriesFromCloses(increasingCloses(20, 100)) // closes 100..119

	plan, err := e.Compute(series)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Indicators.RSI14 != 100.0 {
		t.Errorf("expected RSI 100, got %.4f", plan.Indicators.RSI14)
	}
	if plan.Indicators.MA20 == nil {
		t.Error("expected MA20 to be available for 20 bars")
	}
	if plan.Indicators.MA50 != nil || plan.Indicators.MA200 != nil {
		t.Error("expected MA50/MA200 unavailable for 20 bars")
	}
	wantPivot := (119.0 + 100.0 + 119.0) / 3.0
	if math.Abs(plan.Indicators.Pivot-wantPivot) > 1e-9 {
		t.Errorf("expected pivot %.6f, got %.6f", wantPivot, plan.Indicators.Pivot)
	}
	if plan.Valuation != models.ValuationNearHighs {
		t.Errorf("expected %q for last close at the high, got %q", models.ValuationNearHighs, plan.Valuation)
	}
}

func TestCompute_CloseRelativeBand(t *testing.T) {
	e := NewEngine(BandCloseRelative)
	plan, err := e.Compute(seriesFromCloses(increasingCloses(20, 100)))
	if err != nil {
		t.Fatal(err)
	}
	last := 119.0
	if math.Abs(plan.Entry.Low-0.98*last) > 1e-9 || plan.Entry.Low != plan.Entry.High {
		t.Errorf("unexpected entry band %+v", plan.Entry)
	}
	if math.Abs(plan.Target.Low-1.08*last) > 1e-9 {
		t.Errorf("unexpected target %.4f", plan.Target.Low)
	}
	if math.Abs(plan.StopLoss-0.94*last) > 1e-9 {
		t.Errorf("unexpected stop %.4f", plan.StopLoss)
	}
}

func TestCompute_PivotRelativeBand(t *testing.T) {
	e := NewEngine(BandPivotRelative)
	plan, err := e.Compute(seriesFromCloses(increasingCloses(20, 100)))
	if err != nil {
		t.Fatal(err)
	}
	p := plan.Indicators.Pivot
	r1 := plan.Indicators.R1
	if math.Abs(plan.Entry.Low-0.98*p) > 1e-9 || math.Abs(plan.Entry.High-1.02*p) > 1e-9 {
		t.Errorf("unexpected entry band %+v around pivot %.4f", plan.Entry, p)
	}
	if math.Abs(plan.Target.Low-r1) > 1e-9 || math.Abs(plan.Target.High-(2*r1-p)) > 1e-9 {
		t.Errorf("unexpected target band %+v", plan.Target)
	}
	if plan.StopLoss != plan.Indicators.S1 {
		t.Errorf("expected stop at S1 %.4f, got %.4f", plan.Indicators.S1, plan.StopLoss)
	}
}

func TestCompute_InsufficientData(t *testing.T) {
	e := NewEngine(BandCloseRelative)
	_, err := e.Compute(seriesFromCloses(increasingCloses(14, 100)))
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestParseBandPolicy(t *testing.T) {
	if _, err := ParseBandPolicy("close_relative"); err != nil {
		t.Error(err)
	}
	if _, err := ParseBandPolicy("pivot_relative"); err != nil {
		t.Error(err)
	}
	if _, err := ParseBandPolicy("martingale"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
