package symbols

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
	xlogger "StockScope/pkg/logger"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// fuzzyFloor is the minimum Ratcliff/Obershelp similarity for a fuzzy
// hit; below it resolution fails.
const fuzzyFloor = 0.6

// Resolver maps free-text queries to canonical symbols. The table loads
// lazily exactly once per process; after a successful load readers see
// an immutable table without locking on the hot path. Reload swaps in a
// fresh table explicitly.
type Resolver struct {
	source repository.SymbolSource
	logger *xlogger.Logger

	once  sync.Once
	mu    sync.RWMutex
	table *Table
}

func NewResolver(source repository.SymbolSource, logger *xlogger.Logger) *Resolver {
	return &Resolver{source: source, logger: logger}
}

func (r *Resolver) load(ctx context.Context) {
	raw, err := r.source.Load(ctx)
	if err != nil {
		r.logger.Warn("symbol listing unavailable, using built-in table", xlogger.Error(err))
		raw = builtinTable()
	}
	t := NewTable(raw)
	r.mu.Lock()
	r.table = t
	r.mu.Unlock()
	r.logger.Info("symbol table loaded", xlogger.Int("symbols", t.Len()))
}

func (r *Resolver) snapshot(ctx context.Context) *Table {
	r.once.Do(func() { r.load(ctx) })
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table
}

// Reload refreshes the table from the source. Unlike first load it does
// not fall back to the built-in table; a failed reload keeps the
// current one.
func (r *Resolver) Reload(ctx context.Context) error {
	raw, err := r.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload symbol table: %w", err)
	}
	t := NewTable(raw)
	r.mu.Lock()
	r.table = t
	r.mu.Unlock()
	r.once.Do(func() {}) // lazy init satisfied
	r.logger.Info("symbol table reloaded", xlogger.Int("symbols", t.Len()))
	return nil
}

// Name returns the display name for a resolved symbol, or "" when the
// table does not carry it.
func (r *Resolver) Name(ctx context.Context, symbol string) string {
	name, _ := r.snapshot(ctx).Name(symbol)
	return name
}

// Resolve maps a query to a canonical symbol. Match tiers, first hit
// wins: exact symbol, exact name, substring of a name, fuzzy nearest
// name above the similarity floor. Blank input fails without touching
// the table.
func (r *Resolver) Resolve(ctx context.Context, query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty query", models.ErrSymbolNotFound)
	}

	t := r.snapshot(ctx)
	upper := strings.ToUpper(trimmed)

	// exact symbol
	if _, ok := t.Name(upper); ok {
		return upper, nil
	}

	// exact name
	for _, sym := range t.Symbols() {
		if name, _ := t.Name(sym); name == upper {
			return sym, nil
		}
	}

	// substring of a name, first match in table order
	for _, sym := range t.Symbols() {
		if name, _ := t.Name(sym); strings.Contains(name, upper) {
			return sym, nil
		}
	}

	// fuzzy: nearest name under Ratcliff/Obershelp, best-of-1
	ro := metrics.NewRatcliffObershelp()
	bestSym, bestScore := "", 0.0
	for _, sym := range t.Symbols() {
		name, _ := t.Name(sym)
		score := strutil.Similarity(strings.ToLower(name), strings.ToLower(trimmed), ro)
		if score > bestScore {
			bestSym, bestScore = sym, score
		}
	}
	if bestScore >= fuzzyFloor {
		return bestSym, nil
	}

	return "", fmt.Errorf("%w: %q", models.ErrSymbolNotFound, trimmed)
}
