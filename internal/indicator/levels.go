package indicator

import "StockScope/internal/domain/models"

// FibRatios are the retracement ratios reported with every plan.
var FibRatios = []float64{0.236, 0.382, 0.5, 0.618, 0.786}

// PivotPoints derives the classical pivot and first support/resistance
// levels from the series-wide high/low and the latest close. R1 and S1
// are symmetric around the pivot.
func PivotPoints(high, low, lastClose float64) (pivot, r1, s1 float64) {
	pivot = (high + low + lastClose) / 3.0
	r1 = 2*pivot - low
	s1 = 2*pivot - high
	return pivot, r1, s1
}

// FibRetracement returns the retracement levels between the series-wide
// high and low. Levels decrease monotonically with the ratio and all lie
// within [low, high] when high > low.
func FibRetracement(high, low float64) []models.FibLevel {
	span := high - low
	levels := make([]models.FibLevel, len(FibRatios))
	for i, r := range FibRatios {
		levels[i] = models.FibLevel{Ratio: r, Price: high - span*r}
	}
	return levels
}
