package screener

import "StockScope/internal/domain/models"

// scorecardChecks are the fixed thresholds of the 5-metric scorecard.
// Order is stable for reporting.
var scorecardChecks = []struct {
	ratio string
	pass  func(v float64) bool
}{
	{RatioTrailingPE, func(v float64) bool { return v > 5 && v < 35 }},
	{RatioPriceToBook, func(v float64) bool { return v > 0 && v < 10 }},
	{RatioReturnOnEquity, func(v float64) bool { return v > 0.10 }},
	{RatioDebtToEquity, func(v float64) bool { return v < 1.5 }},
	{RatioCurrentRatio, func(v float64) bool { return v > 1 }},
}

// screenScorecard applies the fixed thresholds. A missing ratio fails
// its check. Strong iff a majority (3 of 5) pass.
func screenScorecard(snapshot *models.FundamentalsSnapshot) models.Verdict {
	score := 0
	for _, c := range scorecardChecks {
		if v, ok := snapshot.Ratio(c.ratio); ok && c.pass(v) {
			score++
		}
	}
	return models.Verdict{
		Strong:  score >= 3,
		Sector:  snapshot.Sector,
		Score:   score,
		Checked: len(scorecardChecks),
	}
}
