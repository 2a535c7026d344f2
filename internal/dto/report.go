package dto

import (
	"github.com/shopspring/decimal"
)

// BalanceTypeCurrent marks the balance record that anchors the running
// balance reconstruction.
const BalanceTypeCurrent = "current"

// RawReport is one report payload as handed over by the ingestion
// collaborator: every deposit account the bank returned, unfiltered.
type RawReport struct {
	Accounts []RawAccount `json:"accounts" validate:"required,min=1,dive"`
}

// RawAccount is a single raw account record. Field names follow the
// canonical ledger contract; validation failures surface as SchemaError.
type RawAccount struct {
	Info         RawAccountInfo   `json:"account_info" validate:"required"`
	Coverage     RawCoverage      `json:"coverage" validate:"required"`
	Owner        RawOwner         `json:"owner"`
	Transactions []RawTransaction `json:"transactions" validate:"dive"`
}

// RawAccountInfo carries account identity and the reported balances.
type RawAccountInfo struct {
	AccountID   string       `json:"account_id" validate:"required"`
	AccountType string       `json:"account_type" validate:"required"`
	Balances    []RawBalance `json:"balances" validate:"required,min=1,dive"`
}

// RawBalance is one reported balance snapshot; Type "current" is the one the
// normalizer extracts.
type RawBalance struct {
	Type   string          `json:"type" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// RawCoverage is the report selection window for the account. The window is
// independent of the dates transactions actually exist on.
type RawCoverage struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// RawOwner carries the account holder PII used for KYC consolidation.
type RawOwner struct {
	Name    string   `json:"name"`
	Emails  []string `json:"emails"`
	Phones  []string `json:"phones"`
	Streets []string `json:"streets"`
	Cities  []string `json:"cities"`
	States  []string `json:"states"`
	Zips    []string `json:"zips"`
}

// RawTransaction is one transaction exactly as reported. Type is the bank's
// debit/credit marker; the normalizer applies the sign convention, so Amount
// may arrive with either sign.
type RawTransaction struct {
	ID     string          `json:"id" validate:"required"`
	Date   string          `json:"date" validate:"required,datetime=2006-01-02"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type" validate:"required"`
	Memo   string          `json:"memo"`
	Status string          `json:"status"`
}
