package models

import "time"

// PriceBar is a single OHLC sample for one interval.
type PriceBar struct {
	Time  time.Time `json:"time"`
	Open  float64   `json:"open"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
	Close float64   `json:"close"`
}

// OHLCSeries is an ordered-by-time price history for one symbol.
// Timestamps are strictly increasing; bars with all-null quotes are
// dropped at the gateway before the series is built.
type OHLCSeries struct {
	Symbol   string     `json:"symbol"`
	Interval string     `json:"interval"`
	Period   string     `json:"period"`
	Bars     []PriceBar `json:"bars"`
}

func (s *OHLCSeries) Len() int { return len(s.Bars) }

// Closes returns the close prices in time order.
func (s *OHLCSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// LastClose returns the most recent close, or 0 for an empty series.
func (s *OHLCSeries) LastClose() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}

// HighLow returns the max high and min low over the entire series.
func (s *OHLCSeries) HighLow() (high, low float64) {
	if len(s.Bars) == 0 {
		return 0, 0
	}
	high, low = s.Bars[0].High, s.Bars[0].Low
	for _, b := range s.Bars[1:] {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low
}
