// Package screener scores a fundamentals snapshot into a coarse
// strong/weak signal. The checks are sector heuristics, not a valuation
// model; treat the verdict as a filter, not advice.
package screener

import (
	"fmt"

	"StockScope/internal/domain/models"
)

// Strategy names a screening rule set. Two incompatible definitions of
// "fundamentally strong" exist upstream; both are kept selectable rather
// than silently merged.
type Strategy string

const (
	// StrategySector scores sector-specific required ratios.
	StrategySector Strategy = "sector"
	// StrategyScorecard applies a fixed 5-metric threshold scorecard.
	StrategyScorecard Strategy = "scorecard"
)

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySector, StrategyScorecard:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown screener strategy %q", s)
	}
}

// Screener evaluates fundamentals snapshots. Pure and stateless; the
// same snapshot always yields the same verdict.
type Screener struct {
	strategy Strategy
}

func New(strategy Strategy) *Screener {
	return &Screener{strategy: strategy}
}

// Screen scores the snapshot under the configured strategy. A nil
// snapshot degrades to a weak verdict.
func (s *Screener) Screen(snapshot *models.FundamentalsSnapshot) models.Verdict {
	if snapshot == nil {
		return models.Verdict{}
	}
	switch s.strategy {
	case StrategyScorecard:
		return screenScorecard(snapshot)
	default:
		return screenSector(snapshot)
	}
}

// screenSector counts how many of the sector's required ratios are
// present and strictly positive. Strong iff the count reaches
// max(1, len(required)/2). Sectors outside the table have no required
// ratios and always screen weak.
func screenSector(snapshot *models.FundamentalsSnapshot) models.Verdict {
	if snapshot.Sector == "" {
		return models.Verdict{}
	}

	required := sectorRatios[snapshot.Sector]
	score := 0
	for _, name := range required {
		if v, ok := snapshot.Ratio(name); ok && v > 0 {
			score++
		}
	}

	threshold := len(required) / 2
	if threshold < 1 {
		threshold = 1
	}

	return models.Verdict{
		Strong:  len(required) > 0 && score >= threshold,
		Sector:  snapshot.Sector,
		Score:   score,
		Checked: len(required),
	}
}
