// Package symbols resolves free-text company queries to canonical
// exchange symbols against a once-loaded constituents table.
package symbols

import (
	"sort"
	"strings"
)

// Table is an immutable symbol -> display name mapping. Symbols and
// names are case-normalized to upper case on construction, and entries
// iterate in sorted symbol order so substring resolution is stable.
type Table struct {
	names map[string]string
	order []string
}

// NewTable builds a table from a raw mapping.
func NewTable(raw map[string]string) *Table {
	names := make(map[string]string, len(raw))
	order := make([]string, 0, len(raw))
	for sym, name := range raw {
		sym = strings.ToUpper(strings.TrimSpace(sym))
		if sym == "" {
			continue
		}
		names[sym] = strings.ToUpper(strings.TrimSpace(name))
		order = append(order, sym)
	}
	sort.Strings(order)
	return &Table{names: names, order: order}
}

func (t *Table) Len() int { return len(t.names) }

// Name returns the display name for a canonical symbol.
func (t *Table) Name(symbol string) (string, bool) {
	name, ok := t.names[strings.ToUpper(symbol)]
	return name, ok
}

// Symbols returns the canonical symbols in stable order.
func (t *Table) Symbols() []string { return t.order }

// builtinTable is the minimal fallback used when the remote
// constituents source is unavailable: the largest-cap NSE symbols.
func builtinTable() map[string]string {
	return map[string]string{
		"RELIANCE": "RELIANCE INDUSTRIES LTD",
		"TCS":      "TATA CONSULTANCY SERVICES LTD",
		"INFY":     "INFOSYS LTD",
		"HDFCBANK": "HDFC BANK LTD",
		"SBIN":     "STATE BANK OF INDIA",
	}
}
