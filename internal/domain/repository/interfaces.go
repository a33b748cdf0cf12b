package repository

import (
	"context"

	"StockScope/internal/domain/models"
)

// MarketData is the market-data gateway as consumed by the pipeline.
// Implementations own transport; retry policy on empty series belongs
// to the caller.
type MarketData interface {
	// FetchHistory returns OHLC bars for symbol at interval over the
	// lookback period. An all-missing upstream response surfaces as
	// models.ErrEmptySeries, which signals a fallback retry rather
	// than a hard failure.
	FetchHistory(ctx context.Context, symbol string, interval Interval, period string) (*models.OHLCSeries, error)

	// FetchFundamentals returns the sector and whatever valuation
	// ratios the provider supplies. Missing ratios are normal.
	FetchFundamentals(ctx context.Context, symbol string) (*models.FundamentalsSnapshot, error)

	// Search returns ranked did-you-mean suggestions. Used only for
	// suggestions, never for symbol resolution.
	Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error)
}

// SymbolSource supplies the {symbol: company name} table consumed once
// at startup.
type SymbolSource interface {
	Load(ctx context.Context) (map[string]string, error)
}

// SymbolResolver maps free-text queries to canonical symbols over the
// once-loaded table.
type SymbolResolver interface {
	Resolve(ctx context.Context, query string) (string, error)
	Name(ctx context.Context, symbol string) string
	Reload(ctx context.Context) error
}

type Metrics interface {
	RecordRequest(outcome string)
	RecordError(kind string)
	RecordLastClose(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
