package dto_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credalytics/deposit_analyzer/internal/apperrors"
	"github.com/credalytics/deposit_analyzer/internal/dto"
)

func validAccount() *dto.RawAccount {
	return &dto.RawAccount{
		Info: dto.RawAccountInfo{
			AccountID:   "acc-1",
			AccountType: "DDA",
			Balances: []dto.RawBalance{
				{Type: dto.BalanceTypeCurrent, Amount: decimal.NewFromInt(1000)},
			},
		},
		Coverage: dto.RawCoverage{StartDate: "2023-01-01", EndDate: "2023-06-01"},
		Owner:    dto.RawOwner{Name: "Jane Doe"},
		Transactions: []dto.RawTransaction{
			{ID: "t1", Date: "2023-02-01", Amount: decimal.NewFromInt(100), Type: "credit"},
		},
	}
}

func TestValidateAccountSuccess(t *testing.T) {
	assert.NoError(t, dto.ValidateAccount(validAccount()))
}

func TestValidateAccountMissingAccountID(t *testing.T) {
	acc := validAccount()
	acc.Info.AccountID = ""

	err := dto.ValidateAccount(acc)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var schemaErr *apperrors.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "account", schemaErr.SchemaName)
	assert.Equal(t, "Info.AccountID", schemaErr.Key)
	assert.Equal(t, "required", schemaErr.Validator)
}

func TestValidateAccountBadTransactionDate(t *testing.T) {
	acc := validAccount()
	acc.Transactions[0].Date = "02/01/2023"

	err := dto.ValidateAccount(acc)
	require.Error(t, err)

	var schemaErr *apperrors.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "datetime", schemaErr.Validator)
	assert.Equal(t, "Transactions[0].Date", schemaErr.Key)
}

func TestValidateAccountEmptyBalances(t *testing.T) {
	acc := validAccount()
	acc.Info.Balances = nil

	err := dto.ValidateAccount(acc)
	require.Error(t, err)

	var schemaErr *apperrors.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Info.Balances", schemaErr.Key)
}

func TestValidateReport(t *testing.T) {
	assert.NoError(t, dto.ValidateReport(&dto.RawReport{Accounts: []dto.RawAccount{*validAccount()}}))

	err := dto.ValidateReport(&dto.RawReport{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.Error(t, dto.ValidateReport(nil))
}
