package repository

// Interval is a bar granularity understood by the gateway.
type Interval string

const (
	Interval1d  Interval = "1d"
	Interval1wk Interval = "1wk"
	Interval1mo Interval = "1mo"

	// Fallback-only granularities: valid upstream, not user-selectable.
	Interval5d  Interval = "5d"
	Interval3mo Interval = "3mo"
)

// IsValidInterval returns true if iv is a user-selectable interval.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case Interval1d, Interval1wk, Interval1mo:
		return true
	default:
		return false
	}
}

// DefaultInterval returns the default interval.
func DefaultInterval() Interval { return Interval1d }

// NormalizeInterval converts a raw string to a valid interval (or default).
func NormalizeInterval(s string) Interval {
	if s == "" {
		return DefaultInterval()
	}
	iv := Interval(s)
	if IsValidInterval(iv) {
		return iv
	}
	return DefaultInterval()
}

// DefaultPeriod maps an interval to a reasonable lookback period.
func (iv Interval) DefaultPeriod() string {
	switch iv {
	case Interval1d:
		return "1mo"
	case Interval1wk:
		return "1y"
	case Interval1mo:
		return "2y"
	default:
		return "6mo"
	}
}

// Fallback returns the coarser interval to retry with when the first
// fetch comes back empty or too short. The second return is false when
// no further fallback is defined; the request then fails terminally.
func (iv Interval) Fallback() (Interval, bool) {
	switch iv {
	case Interval1d:
		return Interval5d, true
	case Interval1wk:
		return Interval1mo, true
	case Interval1mo:
		return Interval3mo, true
	default:
		return "", false
	}
}
