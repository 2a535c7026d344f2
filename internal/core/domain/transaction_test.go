package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
)

func TestTransactionCategories(t *testing.T) {
	txn := &domain.Transaction{}

	assert.False(t, txn.HasCategory(domain.CategorySalary), "missing entries read as false")

	txn.SetCategory(domain.CategorySalary, true)
	assert.True(t, txn.HasCategory(domain.CategorySalary))

	txn.SetCategory(domain.CategorySalary, false)
	assert.False(t, txn.HasCategory(domain.CategorySalary))
}

func TestTransactionFlowDirection(t *testing.T) {
	inflow := &domain.Transaction{Amount: decimal.NewFromInt(10)}
	outflow := &domain.Transaction{Amount: decimal.NewFromInt(-10)}
	zero := &domain.Transaction{Amount: decimal.Zero}

	assert.True(t, inflow.IsInflow())
	assert.False(t, inflow.IsOutflow())
	assert.True(t, outflow.IsOutflow())
	assert.False(t, outflow.IsInflow())
	assert.False(t, zero.IsInflow())
	assert.False(t, zero.IsOutflow())
}

func TestTransactionAmountCents(t *testing.T) {
	testCases := []struct {
		amount   string
		expected int64
	}{
		{"500.00", 50000},
		{"-500.00", -50000},
		{"0.01", 1},
		{"1234.56", 123456},
		{"0", 0},
	}

	for _, tc := range testCases {
		txn := &domain.Transaction{Amount: decimal.RequireFromString(tc.amount)}
		assert.Equal(t, tc.expected, txn.AmountCents(), "amount %s", tc.amount)
	}
}

func TestAllowList(t *testing.T) {
	var empty domain.AllowList
	assert.False(t, empty.Disabled())
	assert.True(t, empty.Allows("is_salary"), "empty list allows everything")

	none := domain.AllowList{domain.AllowListNone}
	assert.True(t, none.Disabled())
	assert.False(t, none.Allows("is_salary"))

	scoped := domain.AllowList{"is_salary", "is_transfer"}
	assert.True(t, scoped.Allows("is_transfer"))
	assert.False(t, scoped.Allows("is_fee"))
}

func TestReportNbTransactionsTotal(t *testing.T) {
	report := &domain.Report{
		Accounts: []*domain.Account{
			{Transactions: []*domain.Transaction{{}, {}}},
			{Transactions: []*domain.Transaction{{}}},
		},
	}
	assert.Equal(t, 3, report.NbTransactionsTotal())
	assert.Equal(t, 2, report.Accounts[0].NbTransactions())
}
