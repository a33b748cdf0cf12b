package symbols

import (
	"context"
	"errors"
	"testing"

	"StockScope/internal/domain/models"
	xlogger "StockScope/pkg/logger"
)

type staticSource struct {
	table map[string]string
	err   error
	calls int
}

func (s *staticSource) Load(context.Context) (map[string]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func newTestResolver(t *testing.T, src *staticSource) *Resolver {
	t.Helper()
	return NewResolver(src, testLogger(t))
}

func TestResolve_MatchTiers(t *testing.T) {
	r := newTestResolver(t, &staticSource{table: map[string]string{
		"TCS": "Tata Consultancy Services",
	}})
	ctx := context.Background()

	tests := []struct {
		query string
		want  string
	}{
		{"tcs", "TCS"},
		{"TCS", "TCS"},
		{"Tata Consultancy Services", "TCS"},
		{"tata consult", "TCS"},
		{"tatta consaltancy", "TCS"}, // fuzzy, similarity >= 0.6
	}
	for _, tt := range tests {
		got, err := r.Resolve(ctx, tt.query)
		if err != nil {
			t.Errorf("Resolve(%q): unexpected error %v", tt.query, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := newTestResolver(t, &staticSource{table: map[string]string{
		"TCS": "Tata Consultancy Services",
	}})
	_, err := r.Resolve(context.Background(), "zzz")
	if !errors.Is(err, models.ErrSymbolNotFound) {
		t.Fatalf("expected ErrSymbolNotFound, got %v", err)
	}
}

func TestResolve_BlankQuery(t *testing.T) {
	src := &staticSource{table: map[string]string{"TCS": "Tata Consultancy Services"}}
	r := newTestResolver(t, src)
	_, err := r.Resolve(context.Background(), "   ")
	if !errors.Is(err, models.ErrSymbolNotFound) {
		t.Fatalf("expected ErrSymbolNotFound, got %v", err)
	}
	if src.calls != 0 {
		t.Errorf("blank query must not load the table, got %d loads", src.calls)
	}
}

func TestResolve_SubstringPrefersTableOrder(t *testing.T) {
	r := newTestResolver(t, &staticSource{table: map[string]string{
		"INFY":  "INFOSYS LTD",
		"INFIB": "INFIBEAM AVENUES LTD",
	}})
	got, err := r.Resolve(context.Background(), "inf")
	if err != nil {
		t.Fatal(err)
	}
	// sorted symbol order: INFIB before INFY
	if got != "INFIB" {
		t.Errorf("expected first table-order substring hit INFIB, got %q", got)
	}
}

func TestResolver_LoadsOnce(t *testing.T) {
	src := &staticSource{table: map[string]string{"TCS": "Tata Consultancy Services"}}
	r := newTestResolver(t, src)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := r.Resolve(ctx, "tcs"); err != nil {
			t.Fatal(err)
		}
	}
	if src.calls != 1 {
		t.Errorf("expected a single lazy load, got %d", src.calls)
	}
}

func TestResolver_FallsBackToBuiltin(t *testing.T) {
	r := newTestResolver(t, &staticSource{err: errors.New("listing down")})
	got, err := r.Resolve(context.Background(), "reliance")
	if err != nil {
		t.Fatal(err)
	}
	if got != "RELIANCE" {
		t.Errorf("expected builtin RELIANCE, got %q", got)
	}
}

func TestResolver_Reload(t *testing.T) {
	src := &staticSource{table: map[string]string{"TCS": "Tata Consultancy Services"}}
	r := newTestResolver(t, src)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "tcs"); err != nil {
		t.Fatal(err)
	}

	src.table = map[string]string{"WIPRO": "WIPRO LTD"}
	if err := r.Reload(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Resolve(ctx, "wipro"); err != nil {
		t.Errorf("expected reloaded symbol to resolve: %v", err)
	}
	if _, err := r.Resolve(ctx, "tcs"); !errors.Is(err, models.ErrSymbolNotFound) {
		t.Errorf("expected old symbol gone after reload, got %v", err)
	}
}

func TestResolver_ReloadFailureKeepsTable(t *testing.T) {
	src := &staticSource{table: map[string]string{"TCS": "Tata Consultancy Services"}}
	r := newTestResolver(t, src)
	ctx := context.Background()
	if _, err := r.Resolve(ctx, "tcs"); err != nil {
		t.Fatal(err)
	}

	src.err = errors.New("listing down")
	if err := r.Reload(ctx); err == nil {
		t.Fatal("expected reload error")
	}
	if _, err := r.Resolve(ctx, "tcs"); err != nil {
		t.Errorf("failed reload must keep the previous table: %v", err)
	}
}

func TestParseListing(t *testing.T) {
	body := []byte("Company Name,Industry,Symbol\nTATA CONSULTANCY SERVICES LTD,IT,TCS\nINFOSYS LTD,IT,INFY\n,,\n")
	got, err := parseListing(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got["TCS"] != "TATA CONSULTANCY SERVICES LTD" {
		t.Errorf("unexpected name %q", got["TCS"])
	}
}

func TestParseListing_MissingColumns(t *testing.T) {
	if _, err := parseListing([]byte("a,b\n1,2\n")); err == nil {
		t.Error("expected error for missing columns")
	}
}
