package attributes_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credalytics/deposit_analyzer/internal/attributes"
	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleResult() *portssvc.AnalysisResult {
	salary := &domain.Transaction{
		ID: "p1", Date: day("2023-05-15"), Amount: decimal.NewFromInt(1500), IsSalaryLike: true,
	}
	inflow := &domain.Transaction{ID: "in", Date: day("2023-05-20"), Amount: decimal.NewFromInt(200)}
	outflow := &domain.Transaction{ID: "out", Date: day("2023-05-21"), Amount: decimal.NewFromInt(-80)}
	internal := &domain.Transaction{
		ID: "int", Date: day("2023-05-22"), Amount: decimal.NewFromInt(500), IsInternal: true,
	}
	stale := &domain.Transaction{ID: "stale", Date: day("2022-06-01"), Amount: decimal.NewFromInt(999)}

	return &portssvc.AnalysisResult{
		RunID:  "run-1",
		Report: &domain.Report{MinDate: day("2022-06-01"), MaxDate: day("2023-06-01")},
		Table:  []*domain.Transaction{stale, salary, inflow, outflow, internal},
		DailyBalances: []domain.DailyBalancePoint{
			{Date: day("2023-05-30"), Balance: decimal.NewFromInt(-5)},
			{Date: day("2023-05-31"), Balance: decimal.NewFromInt(100)},
			{Date: day("2023-06-01"), Balance: decimal.NewFromInt(120)},
		},
	}
}

func TestRegistryBuiltins(t *testing.T) {
	registry := attributes.NewRegistry()
	result := sampleResult()

	testCases := []struct {
		id       string
		expected string
	}{
		{"nb_transactions_total", "5"},
		{"nb_inflows_90d", "2"},
		{"sum_inflows_90d", "1700"},
		{"sum_outflows_90d", "-80"},
		{"sum_salary_like_180d", "1500"},
		{"nb_overdraft_days", "1"},
		{"latest_household_balance", "120"},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			got, err := registry.Compute(tc.id, result)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"got %s want %s", got, tc.expected)
		})
	}
}

func TestRegistryUnknownAttribute(t *testing.T) {
	_, err := attributes.NewRegistry().Compute("nope", sampleResult())
	assert.Error(t, err)
}

func TestRegistryComputeAll(t *testing.T) {
	registry := attributes.NewRegistry()
	values, err := registry.ComputeAll(sampleResult())
	require.NoError(t, err)
	assert.Len(t, values, len(registry.IDs()))
}

func TestRegistryCustomAttribute(t *testing.T) {
	registry := attributes.NewRegistry()
	registry.Register(attributes.Attribute{
		ID:          "always_one",
		Description: "constant",
		Provider: func(*portssvc.AnalysisResult) (decimal.Decimal, error) {
			return decimal.NewFromInt(1), nil
		},
	})

	got, err := registry.Compute("always_one", sampleResult())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)))
	assert.Contains(t, registry.IDs(), "always_one")
}

func TestRegistryLatestBalanceEmptySeries(t *testing.T) {
	result := sampleResult()
	result.DailyBalances = nil

	_, err := attributes.NewRegistry().Compute("latest_household_balance", result)
	assert.Error(t, err)
}
