package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"
)

// chartResponse is the v8 chart API payload. Quote arrays carry null
// for missing samples, hence the pointer elements.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					High  []*float64 `json:"high"`
					Low   []*float64 `json:"low"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchHistory returns the OHLC series for symbol at interval over the
// lookback period. Bars with all-null quotes (holidays, halts) are
// dropped; a series with no usable bars surfaces as ErrEmptySeries so
// the caller can retry with the fallback interval.
func (c *Client) FetchHistory(ctx context.Context, symbol string, interval repository.Interval, period string) (*models.OHLCSeries, error) {
	start := time.Now()

	var resp chartResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     fmt.Sprintf("%s/%s", c.chartURL, url.PathEscape(symbol)),
		Headers: browserHeaders,
		QueryParams: map[string]string{
			"interval": string(interval),
			"range":    period,
		},
	}, &resp)
	if err != nil {
		return nil, classify(err)
	}

	c.logger.Debug("chart fetched",
		xlogger.String("symbol", symbol),
		xlogger.String("interval", string(interval)),
		xlogger.Duration("took", time.Since(start)),
	)

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrGatewayUnavailable, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: %s %s/%s", models.ErrEmptySeries, symbol, interval, period)
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]models.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		o, h, l, cl := deref(quote.Open, i), deref(quote.High, i), deref(quote.Low, i), deref(quote.Close, i)
		if cl == 0 && o == 0 && h == 0 && l == 0 {
			continue // null bar
		}
		bars = append(bars, models.PriceBar{
			Time:  time.Unix(ts, 0).UTC(),
			Open:  o,
			High:  h,
			Low:   l,
			Close: cl,
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s %s/%s", models.ErrEmptySeries, symbol, interval, period)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	return &models.OHLCSeries{
		Symbol:   symbol,
		Interval: string(interval),
		Period:   period,
		Bars:     bars,
	}, nil
}

func deref(xs []*float64, i int) float64 {
	if i >= len(xs) || xs[i] == nil {
		return 0
	}
	return *xs[i]
}
