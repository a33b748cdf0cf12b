// Package yahoo implements the market-data gateway against the Yahoo
// Finance public API.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net"

	"StockScope/internal/domain/models"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"
)

// Client talks to the Yahoo Finance chart, quoteSummary, and search
// endpoints through the shared JSON HTTP client. The client's timeout
// is the caller-visible gateway deadline.
type Client struct {
	chartURL   string
	summaryURL string
	searchURL  string
	http       *xhttp.Client
	logger     *xlogger.Logger
}

// Option configures Client.
type Option func(*Client)

// WithEndpoints overrides the upstream base URLs (used in tests and
// for regional mirrors).
func WithEndpoints(chartURL, summaryURL, searchURL string) Option {
	return func(c *Client) {
		c.chartURL = chartURL
		c.summaryURL = summaryURL
		c.searchURL = searchURL
	}
}

func New(httpClient *xhttp.Client, logger *xlogger.Logger, opts ...Option) *Client {
	c := &Client{
		chartURL:   "https://query1.finance.yahoo.com/v8/finance/chart",
		summaryURL: "https://query1.finance.yahoo.com/v10/finance/quoteSummary",
		searchURL:  "https://query1.finance.yahoo.com/v1/finance/search",
		http:       httpClient,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0",
	"Accept":     "application/json",
}

// classify maps transport failures onto the gateway error kinds the
// pipeline branches on.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", models.ErrGatewayTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", models.ErrGatewayTimeout, err)
	}
	return fmt.Errorf("%w: %v", models.ErrGatewayUnavailable, err)
}
