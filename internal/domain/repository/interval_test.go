package repository

import "testing"

func TestNormalizeInterval(t *testing.T) {
	tests := []struct {
		raw  string
		want Interval
	}{
		{"", Interval1d},
		{"1d", Interval1d},
		{"1wk", Interval1wk},
		{"1mo", Interval1mo},
		{"5d", Interval1d},  // fallback-only, not user-selectable
		{"3mo", Interval1d}, // fallback-only, not user-selectable
		{"4h", Interval1d},
		{"garbage", Interval1d},
	}
	for _, tt := range tests {
		if got := NormalizeInterval(tt.raw); got != tt.want {
			t.Errorf("NormalizeInterval(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDefaultPeriod(t *testing.T) {
	tests := []struct {
		iv   Interval
		want string
	}{
		{Interval1d, "1mo"},
		{Interval1wk, "1y"},
		{Interval1mo, "2y"},
		{Interval5d, "6mo"},
		{Interval3mo, "6mo"},
	}
	for _, tt := range tests {
		if got := tt.iv.DefaultPeriod(); got != tt.want {
			t.Errorf("%s.DefaultPeriod() = %q, want %q", tt.iv, got, tt.want)
		}
	}
}

func TestFallbackChainTerminates(t *testing.T) {
	// Every user-selectable interval has exactly one fallback, and that
	// fallback has none: at most two fetch attempts per request.
	for _, iv := range []Interval{Interval1d, Interval1wk, Interval1mo} {
		fb, ok := iv.Fallback()
		if !ok {
			t.Errorf("%s has no fallback", iv)
			continue
		}
		if iv == Interval1wk {
			// 1wk falls back to 1mo, which is itself selectable; its
			// fallback is 3mo, which must be terminal.
			fb2, ok2 := fb.Fallback()
			if ok2 {
				if _, ok3 := fb2.Fallback(); ok3 {
					t.Errorf("fallback chain from %s exceeds two hops", iv)
				}
			}
			continue
		}
		if _, ok := fb.Fallback(); ok {
			t.Errorf("fallback of %s (%s) has its own fallback", iv, fb)
		}
	}
}
