package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"StockScope/internal/domain/models"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"
)

// summaryModules are the quoteSummary modules carrying the sector and
// the ratios the screener checks.
const summaryModules = "summaryProfile,summaryDetail,defaultKeyStatistics,financialData"

// rawValue is Yahoo's {raw, fmt} number wrapper. Non-numeric or missing
// raw fields decode to an absent value instead of failing the request;
// a malformed snapshot degrades to "ratio absent".
type rawValue struct {
	Raw *float64
}

func (v *rawValue) UnmarshalJSON(b []byte) error {
	var probe struct {
		Raw json.Number `json:"raw"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil
	}
	if f, err := probe.Raw.Float64(); err == nil {
		v.Raw = &f
	}
	return nil
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile *struct {
				Sector string `json:"sector"`
			} `json:"summaryProfile"`
			SummaryDetail        map[string]rawValue `json:"summaryDetail"`
			DefaultKeyStatistics map[string]rawValue `json:"defaultKeyStatistics"`
			FinancialData        map[string]rawValue `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchFundamentals returns the sector and whatever ratios the provider
// supplies for symbol. Ratios are sector-dependent and often missing;
// only numeric values end up in the snapshot.
func (c *Client) FetchFundamentals(ctx context.Context, symbol string) (*models.FundamentalsSnapshot, error) {
	var resp summaryResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     fmt.Sprintf("%s/%s", c.summaryURL, url.PathEscape(symbol)),
		Headers: browserHeaders,
		QueryParams: map[string]string{
			"modules": summaryModules,
		},
	}, &resp)
	if err != nil {
		return nil, classify(err)
	}

	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrGatewayUnavailable, resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: no fundamentals for %s", models.ErrMalformedSnapshot, symbol)
	}

	result := resp.QuoteSummary.Result[0]
	snapshot := &models.FundamentalsSnapshot{
		Symbol: symbol,
		Ratios: make(map[string]float64),
	}
	if result.SummaryProfile != nil {
		snapshot.Sector = result.SummaryProfile.Sector
	}
	for _, module := range []map[string]rawValue{result.SummaryDetail, result.DefaultKeyStatistics, result.FinancialData} {
		for name, v := range module {
			if v.Raw != nil {
				snapshot.Ratios[name] = *v.Raw
			}
		}
	}

	c.logger.Debug("fundamentals fetched",
		xlogger.String("symbol", symbol),
		xlogger.String("sector", snapshot.Sector),
		xlogger.Int("ratios", len(snapshot.Ratios)),
	)

	return snapshot, nil
}
