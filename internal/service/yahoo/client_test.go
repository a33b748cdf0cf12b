package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"
)

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func newTestClient(t *testing.T, srv *httptest.Server, timeout time.Duration) *Client {
	t.Helper()
	return New(
		xhttp.NewClient(xhttp.WithTimeout(timeout)),
		testLogger(t),
		WithEndpoints(srv.URL+"/chart", srv.URL+"/summary", srv.URL+"/search"),
	)
}

const chartBody = `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],
"indicators":{"quote":[{
"open":[100.0,null,102.0],
"high":[101.0,null,103.5],
"low":[99.0,null,101.0],
"close":[100.5,null,103.0]}]}}],"error":null}}`

func TestFetchHistory_ParsesAndSkipsNullBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("unexpected interval %q", got)
		}
		fmt.Fprint(w, chartBody)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 5*time.Second)
	series, err := c.FetchHistory(context.Background(), "TCS", repository.Interval1d, "1mo")
	if err != nil {
		t.Fatal(err)
	}
	if series.Len() != 2 {
		t.Fatalf("expected 2 bars after dropping the null one, got %d", series.Len())
	}
	if series.LastClose() != 103.0 {
		t.Errorf("unexpected last close %.2f", series.LastClose())
	}
	if !series.Bars[0].Time.Before(series.Bars[1].Time) {
		t.Error("bars not sorted by time")
	}
}

func TestFetchHistory_EmptySeries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{"open":[],"high":[],"low":[],"close":[]}]}}],"error":null}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 5*time.Second)
	_, err := c.FetchHistory(context.Background(), "ILLIQUID", repository.Interval1mo, "2y")
	if !errors.Is(err, models.ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

func TestFetchHistory_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 5*time.Second)
	_, err := c.FetchHistory(context.Background(), "NOPE", repository.Interval1d, "1mo")
	if !errors.Is(err, models.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestFetchHistory_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, chartBody)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 20*time.Millisecond)
	_, err := c.FetchHistory(context.Background(), "SLOW", repository.Interval1d, "1mo")
	if !errors.Is(err, models.ErrGatewayTimeout) {
		t.Fatalf("expected ErrGatewayTimeout, got %v", err)
	}
}

func TestFetchFundamentals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[{
"summaryProfile":{"sector":"Banks"},
"summaryDetail":{"trailingPE":{"raw":18.2,"fmt":"18.20"}},
"defaultKeyStatistics":{"priceToBook":{"raw":2.4,"fmt":"2.40"},"enterpriseToEbitda":{}},
"financialData":{"returnOnEquity":{"raw":0.14,"fmt":"14%"},"debtToEquity":{"raw":"oops"}}
}],"error":null}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 5*time.Second)
	snap, err := c.FetchFundamentals(context.Background(), "HDFCBANK")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Sector != "Banks" {
		t.Errorf("unexpected sector %q", snap.Sector)
	}
	if v, ok := snap.Ratio("trailingPE"); !ok || v != 18.2 {
		t.Errorf("expected trailingPE 18.2, got %v %v", v, ok)
	}
	if v, ok := snap.Ratio("returnOnEquity"); !ok || v != 0.14 {
		t.Errorf("expected returnOnEquity 0.14, got %v %v", v, ok)
	}
	// absent raw and non-numeric raw both mean "ratio absent"
	if _, ok := snap.Ratio("enterpriseToEbitda"); ok {
		t.Error("empty value must not appear in the snapshot")
	}
	if _, ok := snap.Ratio("debtToEquity"); ok {
		t.Error("non-numeric raw must not appear in the snapshot")
	}
}

func TestFetchFundamentals_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[],"error":null}}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 5*time.Second)
	_, err := c.FetchFundamentals(context.Background(), "NOPE")
	if !errors.Is(err, models.ErrMalformedSnapshot) {
		t.Fatalf("expected ErrMalformedSnapshot, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "infosys" {
			t.Errorf("unexpected query %q", got)
		}
		fmt.Fprint(w, `{"quotes":[
{"symbol":"INFY.NS","shortname":"Infosys Limited","exchange":"NSI"},
{"symbol":"INFY","longname":"Infosys Limited ADR","exchange":"NYQ"},
{"symbol":"","shortname":"junk"}]}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, 5*time.Second)
	got, err := c.Search(context.Background(), "infosys", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].Symbol != "INFY.NS" || got[0].Name != "Infosys Limited" {
		t.Errorf("unexpected first suggestion %+v", got[0])
	}
	if got[1].Name != "Infosys Limited ADR" {
		t.Errorf("expected longname fallback, got %+v", got[1])
	}
}
