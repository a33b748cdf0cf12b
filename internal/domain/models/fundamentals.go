package models

// FundamentalsSnapshot is a point-in-time view of a company's valuation
// ratios. Ratios are sparse: only provider-supplied values are present,
// and absence is normal rather than an error.
type FundamentalsSnapshot struct {
	Symbol string             `json:"symbol"`
	Name   string             `json:"name,omitempty"`
	Sector string             `json:"sector,omitempty"`
	Ratios map[string]float64 `json:"ratios"`
}

// Ratio returns the named ratio and whether it was supplied.
func (f *FundamentalsSnapshot) Ratio(name string) (float64, bool) {
	v, ok := f.Ratios[name]
	return v, ok
}

// Verdict is the screener's pass/fail strength signal. It is a coarse
// heuristic over sector criteria, not a valuation model.
type Verdict struct {
	Strong  bool   `json:"strong"`
	Sector  string `json:"sector,omitempty"`
	Score   int    `json:"score"`
	Checked int    `json:"checked"`
}

// Suggestion is a did-you-mean search hit from the gateway.
type Suggestion struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange,omitempty"`
}
