package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/credalytics/deposit_analyzer/internal/apperrors"
	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
	"github.com/credalytics/deposit_analyzer/internal/dto"
)

const dateLayout = "2006-01-02"

// reportService normalizes raw account records into the canonical report.
type reportService struct {
	BaseService
	excludedAccountTypes map[string]struct{}
}

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithExcludedAccountTypes sets the account types skipped during ingestion.
func WithExcludedAccountTypes(types []string) ReportServiceOption {
	return func(s *reportService) {
		s.excludedAccountTypes = make(map[string]struct{}, len(types))
		for _, t := range types {
			s.excludedAccountTypes[t] = struct{}{}
		}
	}
}

// NewReportService creates a new report builder. By default credit-card
// accounts (type CCA) are excluded.
func NewReportService(options ...ReportServiceOption) portssvc.ReportBuilderSvc {
	svc := &reportService{
		excludedAccountTypes: map[string]struct{}{"CCA": {}},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// BuildReport validates and normalizes every account in the payload and
// assigns dense zero-based account numbers in ingestion order. Accounts of an
// excluded type and accounts without posted transactions are skipped before
// numbering.
func (s *reportService) BuildReport(ctx context.Context, raw *dto.RawReport) (*domain.Report, error) {
	if err := dto.ValidateReport(raw); err != nil {
		return nil, err
	}

	report := &domain.Report{}
	nextNumber := 0
	for i := range raw.Accounts {
		rawAcc := &raw.Accounts[i]
		if _, excluded := s.excludedAccountTypes[rawAcc.Info.AccountType]; excluded {
			s.LogDebug(ctx, "skipping account with excluded type",
				slog.Int("payload_index", i), slog.String("account_type", rawAcc.Info.AccountType))
			continue
		}

		acc, err := s.buildAccount(rawAcc)
		if err != nil {
			return nil, err
		}
		if acc.NbTransactions() == 0 {
			s.LogDebug(ctx, "skipping account without posted transactions",
				slog.Int("payload_index", i))
			continue
		}

		acc.AccountNumber = nextNumber
		for _, txn := range acc.Transactions {
			txn.AccountNumber = nextNumber
		}
		nextNumber++
		report.Accounts = append(report.Accounts, acc)
	}

	if len(report.Accounts) == 0 {
		return nil, fmt.Errorf("building report: %w", apperrors.ErrNoValidAccount)
	}
	if report.NbTransactionsTotal() == 0 {
		return nil, fmt.Errorf("building report: %w", apperrors.ErrNoTransactions)
	}

	for i, acc := range report.Accounts {
		if i == 0 || acc.OldestBalanceDate.Before(report.MinDate) {
			report.MinDate = acc.OldestBalanceDate
		}
		if i == 0 || acc.MostRecentBalanceDate.After(report.MaxDate) {
			report.MaxDate = acc.MostRecentBalanceDate
		}
	}

	s.LogInfo(ctx, "report built",
		slog.Int("accounts", len(report.Accounts)),
		slog.Int("transactions", report.NbTransactionsTotal()))
	return report, nil
}

// buildAccount normalizes a single raw account record: schema validation,
// current balance extraction, sign normalization, pending removal, (date, id)
// ordering and the running balance reconstruction.
func (s *reportService) buildAccount(raw *dto.RawAccount) (*domain.Account, error) {
	if err := dto.ValidateAccount(raw); err != nil {
		return nil, err
	}

	currentBalance, err := extractCurrentBalance(raw)
	if err != nil {
		return nil, err
	}

	oldest, err := time.Parse(dateLayout, raw.Coverage.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing coverage start date: %w", err)
	}
	mostRecent, err := time.Parse(dateLayout, raw.Coverage.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parsing coverage end date: %w", err)
	}
	if oldest.After(mostRecent) {
		oldest, mostRecent = mostRecent, oldest
	}

	acc := &domain.Account{
		OriginalID:            raw.Info.AccountID,
		AccountType:           raw.Info.AccountType,
		OwnerName:             strings.ToLower(raw.Owner.Name),
		CurrentBalance:        currentBalance,
		OldestBalanceDate:     oldest,
		MostRecentBalanceDate: mostRecent,
		Emails:                raw.Owner.Emails,
		Phones:                raw.Owner.Phones,
		Streets:               raw.Owner.Streets,
		Cities:                raw.Owner.Cities,
		States:                raw.Owner.States,
		Zips:                  raw.Owner.Zips,
	}

	for i := range raw.Transactions {
		txn, keep, err := normalizeTransaction(&raw.Transactions[i])
		if err != nil {
			return nil, err
		}
		if keep {
			acc.Transactions = append(acc.Transactions, txn)
		}
	}

	// (date, id) ascending is the tie-break order for everything downstream.
	sort.SliceStable(acc.Transactions, func(i, j int) bool {
		a, b := acc.Transactions[i], acc.Transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	fillRunningBalance(acc)
	fillAccountCounters(acc)
	return acc, nil
}

// extractCurrentBalance selects the balance record whose type is "current".
func extractCurrentBalance(raw *dto.RawAccount) (decimal.Decimal, error) {
	for _, bal := range raw.Info.Balances {
		if strings.EqualFold(bal.Type, dto.BalanceTypeCurrent) {
			return bal.Amount, nil
		}
	}
	return decimal.Zero, &apperrors.SchemaError{
		SchemaName: "account",
		Key:        "account_info.balances",
		Validator:  "current_balance",
		Message:    "no balance record of type current",
	}
}

// normalizeTransaction applies the sign convention (credits positive, debits
// negative) and drops pending rows. keep is false for dropped rows.
func normalizeTransaction(raw *dto.RawTransaction) (*domain.Transaction, bool, error) {
	if strings.Contains(strings.ToLower(raw.Status), "pending") {
		return nil, false, nil
	}

	date, err := time.Parse(dateLayout, raw.Date)
	if err != nil {
		return nil, false, fmt.Errorf("parsing transaction %s date: %w", raw.ID, err)
	}

	amount := raw.Amount
	switch strings.ToLower(raw.Type) {
	case "debit":
		amount = amount.Abs().Neg()
	case "credit":
		amount = amount.Abs()
	}

	return &domain.Transaction{
		ID:          raw.ID,
		Date:        date,
		Amount:      amount,
		Description: raw.Memo,
		Status:      domain.StatusPosted,
	}, true, nil
}

// fillRunningBalance anchors the running balance on the reported current
// balance: the opening balance is current minus the sum of all retained
// amounts, and each row carries opening plus the cumulative sum so far.
func fillRunningBalance(acc *domain.Account) {
	total := decimal.Zero
	for _, txn := range acc.Transactions {
		total = total.Add(txn.Amount)
	}
	running := acc.CurrentBalance.Sub(total)
	for _, txn := range acc.Transactions {
		running = running.Add(txn.Amount)
		txn.Balance = running
	}
}

func fillAccountCounters(acc *domain.Account) {
	if len(acc.Transactions) == 0 {
		return
	}
	acc.OldestTransactionDate = acc.Transactions[0].Date
	acc.MostRecentTransactionDate = acc.Transactions[len(acc.Transactions)-1].Date
	acc.DaysSpan = int(acc.MostRecentTransactionDate.Sub(acc.OldestTransactionDate).Hours() / 24)
	for _, txn := range acc.Transactions {
		switch {
		case txn.IsInflow():
			acc.NbInflows++
		case txn.IsOutflow():
			acc.NbOutflows++
		}
		if txn.Balance.IsNegative() {
			acc.NbOverdrafts++
		}
	}
}
