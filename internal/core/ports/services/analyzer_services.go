package services

import (
	"context"
	"time"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	"github.com/credalytics/deposit_analyzer/internal/dto"
	"github.com/credalytics/deposit_analyzer/internal/platform/config"
)

// ReportBuilderSvc turns one raw report payload into the normalized report:
// valid accounts only, numbered, ledgers sorted with running balances.
type ReportBuilderSvc interface {
	// BuildReport validates and normalizes every account of the raw payload.
	// It fails with apperrors.ErrNoValidAccount when no account survives
	// filtering and apperrors.ErrNoTransactions when the surviving accounts
	// hold no transactions.
	BuildReport(ctx context.Context, raw *dto.RawReport) (*domain.Report, error)
}

// DailyBalanceSvc reconstructs per-day balances over the report window.
type DailyBalanceSvc interface {
	// AccountDailyBalances emits exactly one point per calendar day of the
	// account's coverage window, carrying balances forward across gaps.
	AccountDailyBalances(ctx context.Context, account *domain.Account) []domain.DailyBalancePoint

	// HouseholdDailyBalances sums the per-account series by date.
	HouseholdDailyBalances(ctx context.Context, report *domain.Report) []domain.DailyBalancePoint
}

// CategorizerSvc applies the keyword dictionaries and calendar fields.
type CategorizerSvc interface {
	Categorize(ctx context.Context, table []*domain.Transaction) error
}

// TransferTaggerSvc pairs the two legs of internal transfers.
type TransferTaggerSvc interface {
	TagInternalTransfers(ctx context.Context, table []*domain.Transaction) error
}

// SalaryLikeSvc flags recurring payroll-like inflows. The window is anchored
// at the report's maximum observed date.
type SalaryLikeSvc interface {
	TagSalaryLike(ctx context.Context, table []*domain.Transaction, reportMaxDate time.Time) error
}

// PriorityResolverSvc suppresses lower-priority tags.
type PriorityResolverSvc interface {
	Resolve(ctx context.Context, table []*domain.Transaction) error
}

// AnalysisResult is the output handed to downstream attribute calculators.
type AnalysisResult struct {
	RunID         string
	Report        *domain.Report
	Table         []*domain.Transaction
	DailyBalances []domain.DailyBalancePoint
}

// AnalyzerSvc runs the whole pipeline over one raw report.
type AnalyzerSvc interface {
	Analyze(ctx context.Context, raw *dto.RawReport, rules *config.RuleSet) (*AnalysisResult, error)
}
