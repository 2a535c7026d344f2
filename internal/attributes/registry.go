// Package attributes exposes the catalogue of numeric attributes that can be
// computed from one analysis result. Each attribute is registered under a
// stable identifier so callers can request values by name.
package attributes

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
	"github.com/credalytics/deposit_analyzer/internal/utils/windows"
)

// Provider computes one attribute value from a finished analysis.
type Provider func(result *portssvc.AnalysisResult) (decimal.Decimal, error)

// Attribute is one catalogue entry.
type Attribute struct {
	ID          string
	Description string
	Provider    Provider
}

// Registry holds the attribute catalogue.
type Registry struct {
	entries map[string]Attribute
}

// NewRegistry returns a registry preloaded with the built-in attributes.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Attribute)}
	for _, attr := range builtins() {
		r.Register(attr)
	}
	return r
}

// Register adds or replaces an attribute.
func (r *Registry) Register(attr Attribute) {
	r.entries[attr.ID] = attr
}

// IDs returns the registered identifiers, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Compute evaluates one attribute by identifier.
func (r *Registry) Compute(id string, result *portssvc.AnalysisResult) (decimal.Decimal, error) {
	attr, ok := r.entries[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown attribute %q", id)
	}
	return attr.Provider(result)
}

// ComputeAll evaluates every registered attribute. A provider error aborts
// the batch.
func (r *Registry) ComputeAll(result *portssvc.AnalysisResult) (map[string]decimal.Decimal, error) {
	values := make(map[string]decimal.Decimal, len(r.entries))
	for id, attr := range r.entries {
		v, err := attr.Provider(result)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", id, err)
		}
		values[id] = v
	}
	return values, nil
}

func builtins() []Attribute {
	return []Attribute{
		{
			ID:          "nb_transactions_total",
			Description: "Number of transactions across all accounts.",
			Provider: func(result *portssvc.AnalysisResult) (decimal.Decimal, error) {
				return decimal.NewFromInt(int64(len(result.Table))), nil
			},
		},
		{
			ID:          "nb_inflows_90d",
			Description: "Number of inflows in the trailing 90 days, internal transfers excluded.",
			Provider: func(result *portssvc.AnalysisResult) (decimal.Decimal, error) {
				rows := trailingWindow(result, 90, windows.Filter{InflowsOnly: true, ExcludeInternal: true})
				return decimal.NewFromInt(int64(len(rows))), nil
			},
		},
		{
			ID:          "sum_inflows_90d",
			Description: "Sum of inflow amounts in the trailing 90 days, internal transfers excluded.",
			Provider: func(result *portssvc.AnalysisResult) (decimal.Decimal, error) {
				return sumAmounts(trailingWindow(result, 90, windows.Filter{InflowsOnly: true, ExcludeInternal: true})), nil
			},
		},
		{
			ID:          "sum_outflows_90d",
			Description: "Sum of outflow amounts in the trailing 90 days, internal transfers excluded.",
			Provider: func(result *portssvc.AnalysisResult) (decimal.Decimal, error) {
				return sumAmounts(trailingWindow(result, 90, windows.Filter{OutflowsOnly: true, ExcludeInternal: true})), nil
			},
		},
		{
			ID:          "sum_salary_like_180d",
			Description: "Sum of salary-like inflows in the trailing 180 days.",
			Provider: func(result *portssvc.AnalysisResult) (decimal.Decimal, error) {
				rows := trailingWindow(result, 180, windows.Filter{InflowsOnly: true})
				total := decimal.Zero
				for _, txn := range rows {
					if txn.IsSalaryLike {
						total = total.Add(txn.Amount)
					}
				}
				return total, nil
			},
		},
		{
			ID:          "nb_overdraft_days",
			Description: "Number of days the household daily balance is negative.",
			Provider: func(result *portssvc.AnalysisResult) (decimal.Decimal, error) {
				var n int64
				for _, point := range result.DailyBalances {
					if point.Balance.IsNegative() {
						n++
					}
				}
				return decimal.NewFromInt(n), nil
			},
		},
		{
			ID:          "latest_household_balance",
			Description: "Household balance on the most recent covered day.",
			Provider: func(result *portssvc.AnalysisResult) (decimal.Decimal, error) {
				if len(result.DailyBalances) == 0 {
					return decimal.Zero, fmt.Errorf("no daily balances")
				}
				return result.DailyBalances[len(result.DailyBalances)-1].Balance, nil
			},
		},
	}
}

func trailingWindow(result *portssvc.AnalysisResult, days int, base windows.Filter) []*domain.Transaction {
	base.LastDate = result.Report.MaxDate
	base.Days = days
	return base.Apply(result.Table)
}

func sumAmounts(rows []*domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range rows {
		total = total.Add(txn.Amount)
	}
	return total
}
