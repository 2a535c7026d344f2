// Package windows trims a transaction table to the rows relevant for a
// windowed calculation: a trailing date range, an absolute amount floor,
// a cash-flow direction, category membership and internal-transfer
// exclusion.
package windows

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
)

// Filter describes one window over the enriched table. The zero value keeps
// every row.
type Filter struct {
	// LastDate anchors the window; Days reaches back from it. Both must be
	// set for the date restriction to apply.
	LastDate time.Time
	Days     int

	// MinAmount keeps rows whose absolute amount is strictly greater.
	MinAmount decimal.Decimal

	// InflowsOnly keeps rows with positive amounts, OutflowsOnly with
	// negative ones.
	InflowsOnly  bool
	OutflowsOnly bool

	// Categories keeps rows carrying at least one of the named tags. Empty
	// means no category restriction.
	Categories []string

	// ExcludeInternal drops internal-transfer legs.
	ExcludeInternal bool
}

// Apply returns the rows passing every restriction, in table order. The
// input is never mutated.
func (f Filter) Apply(table []*domain.Transaction) []*domain.Transaction {
	var firstDate time.Time
	dateBound := !f.LastDate.IsZero() && f.Days > 0
	if dateBound {
		firstDate = f.LastDate.AddDate(0, 0, -f.Days)
	}

	var kept []*domain.Transaction
	for _, txn := range table {
		if dateBound && (txn.Date.Before(firstDate) || txn.Date.After(f.LastDate)) {
			continue
		}
		if !f.MinAmount.IsZero() && txn.Amount.Abs().LessThanOrEqual(f.MinAmount) {
			continue
		}
		if f.InflowsOnly && !txn.IsInflow() {
			continue
		}
		if f.OutflowsOnly && !txn.IsOutflow() {
			continue
		}
		if f.ExcludeInternal && txn.IsInternal {
			continue
		}
		if len(f.Categories) > 0 && !hasAnyCategory(txn, f.Categories) {
			continue
		}
		kept = append(kept, txn)
	}
	return kept
}

func hasAnyCategory(txn *domain.Transaction, categories []string) bool {
	for _, c := range categories {
		if txn.HasCategory(c) {
			return true
		}
	}
	return false
}
