package symbols

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	xhttp "StockScope/pkg/http"
)

// CSVSource loads the constituents table from a remote CSV listing with
// Symbol and Company Name columns (the NSE index constituents format).
type CSVSource struct {
	url    string
	client *xhttp.Client
}

func NewCSVSource(url string, client *xhttp.Client) *CSVSource {
	return &CSVSource{url: url, client: client}
}

// Load fetches and parses the listing. Any failure is returned to the
// caller, which falls back to the built-in table.
func (s *CSVSource) Load(ctx context.Context) (map[string]string, error) {
	var body []byte
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.url,
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0",
			"Accept":     "text/csv,*/*",
		},
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("fetch symbol listing: %w", err)
	}

	return parseListing(body)
}

func parseListing(body []byte) (map[string]string, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse symbol listing: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("symbol listing has no data rows")
	}

	symCol, nameCol := -1, -1
	for i, h := range records[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "symbol":
			symCol = i
		case "company name":
			nameCol = i
		}
	}
	if symCol < 0 || nameCol < 0 {
		return nil, fmt.Errorf("symbol listing missing Symbol/Company Name columns")
	}

	out := make(map[string]string, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) <= symCol || len(rec) <= nameCol {
			continue
		}
		sym := strings.TrimSpace(rec[symCol])
		name := strings.TrimSpace(rec[nameCol])
		if sym == "" || name == "" {
			continue
		}
		out[sym] = name
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("symbol listing yielded no usable rows")
	}
	return out, nil
}
