package indicator

import "errors"

// SMA computes the simple moving average of the most recent window closes.
func SMA(closes []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(closes) < window {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(closes) - window; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(window), nil
}

// smaOrNil returns a pointer to the SMA, or nil when the series is
// shorter than the window. The unavailable state is explicit so the
// presentation layer can skip the overlay rather than draw a zero line.
func smaOrNil(closes []float64, window int) *float64 {
	v, err := SMA(closes, window)
	if err != nil {
		return nil
	}
	return &v
}
