package yahoo

import (
	"context"
	"strconv"

	"StockScope/internal/domain/models"
	xhttp "StockScope/pkg/http"
)

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
	} `json:"quotes"`
}

// Search returns ranked did-you-mean suggestions for a free-text query.
// Suggestions are display hints only; resolution goes through the
// symbol table.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	if limit <= 0 {
		limit = 5
	}

	var resp searchResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     c.searchURL,
		Headers: browserHeaders,
		QueryParams: map[string]string{
			"q":           query,
			"quotesCount": strconv.Itoa(limit),
			"newsCount":   "0",
		},
	}, &resp)
	if err != nil {
		return nil, classify(err)
	}

	out := make([]models.Suggestion, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		if q.Symbol == "" {
			continue
		}
		name := q.ShortName
		if name == "" {
			name = q.LongName
		}
		out = append(out, models.Suggestion{
			Symbol:   q.Symbol,
			Name:     name,
			Exchange: q.Exchange,
		})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
