package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
	"github.com/credalytics/deposit_analyzer/internal/dto"
	"github.com/credalytics/deposit_analyzer/internal/platform/config"
	"github.com/credalytics/deposit_analyzer/internal/platform/logging"
)

// analyzerService runs the full pipeline over one raw report: normalize,
// reconstruct daily balances, categorize, tag internal transfers, tag
// salary-like inflows, resolve priorities. Stages run strictly in that
// order against one shared table; each stage mutates the table it receives.
type analyzerService struct {
	BaseService
	reports  portssvc.ReportBuilderSvc
	balances portssvc.DailyBalanceSvc
}

// NewAnalyzerService creates a new analyzer around the given report builder
// and daily balance reconstructor. The rule-bound stages are built per run
// from the rule set passed to Analyze, so rule data never outlives a run.
func NewAnalyzerService(reports portssvc.ReportBuilderSvc, balances portssvc.DailyBalanceSvc) portssvc.AnalyzerSvc {
	return &analyzerService{reports: reports, balances: balances}
}

// Analyze executes one analysis run. The run either completes
// deterministically or fails fast with a terminal error; consistency
// disagreements are logged, never fatal.
func (s *analyzerService) Analyze(ctx context.Context, raw *dto.RawReport, rules *config.RuleSet) (*portssvc.AnalysisResult, error) {
	runID := uuid.NewString()
	logger := s.GetLogger(ctx).With(slog.String("run_id", runID))
	ctx = logging.WithLogger(ctx, logger)

	report, err := s.reports.BuildReport(ctx, raw)
	if err != nil {
		return nil, err
	}

	table := mergeTables(report)
	daily := s.balances.HouseholdDailyBalances(ctx, report)

	categorizer := NewCategorizerService(rules.Dictionary,
		WithExactAllowList(rules.ExactAllowList),
		WithContainedAllowList(rules.ContainedAllowList))
	if err := categorizer.Categorize(ctx, table); err != nil {
		return nil, err
	}

	if err := NewTransferService().TagInternalTransfers(ctx, table); err != nil {
		return nil, err
	}

	if err := NewSalaryLikeService(rules.Salary).TagSalaryLike(ctx, table, report.MaxDate); err != nil {
		return nil, err
	}

	if err := NewPriorityService(rules.Priority).Resolve(ctx, table); err != nil {
		return nil, err
	}

	s.checkConsistency(ctx, report, table)

	logger.Info("analysis run complete",
		slog.Int("accounts", len(report.Accounts)),
		slog.Int("transactions", len(table)),
		slog.Int("daily_points", len(daily)))

	return &portssvc.AnalysisResult{
		RunID:         runID,
		Report:        report,
		Table:         table,
		DailyBalances: daily,
	}, nil
}

// mergeTables flattens the per-account ledgers into one table sorted by
// (date, account_number), keeping the per-account (date, id) order within
// ties. This is the existing order the greedy stages iterate in.
func mergeTables(report *domain.Report) []*domain.Transaction {
	var table []*domain.Transaction
	for _, acc := range report.Accounts {
		table = append(table, acc.Transactions...)
	}
	sort.SliceStable(table, func(i, j int) bool {
		if !table[i].Date.Equal(table[j].Date) {
			return table[i].Date.Before(table[j].Date)
		}
		return table[i].AccountNumber < table[j].AccountNumber
	})
	return table
}

// checkConsistency recomputes transaction, inflow and overdraft counts from
// the merged table and compares them with the per-account counters. A
// disagreement means a stage corrupted the table; it is logged as a warning
// and never fails the run.
func (s *analyzerService) checkConsistency(ctx context.Context, report *domain.Report, table []*domain.Transaction) {
	wantTxns := report.NbTransactionsTotal()
	wantInflows, wantOverdrafts := 0, 0
	for _, acc := range report.Accounts {
		wantInflows += acc.NbInflows
		wantOverdrafts += acc.NbOverdrafts
	}

	gotInflows, gotOverdrafts := 0, 0
	for _, txn := range table {
		if txn.IsInflow() {
			gotInflows++
		}
		if txn.Balance.IsNegative() {
			gotOverdrafts++
		}
	}

	if len(table) != wantTxns {
		s.LogWarn(ctx, "transaction count mismatch between merged table and accounts",
			slog.Int("table", len(table)), slog.Int("accounts", wantTxns))
	}
	if gotInflows != wantInflows {
		s.LogWarn(ctx, "inflow count mismatch between merged table and accounts",
			slog.Int("table", gotInflows), slog.Int("accounts", wantInflows))
	}
	if gotOverdrafts != wantOverdrafts {
		s.LogWarn(ctx, "overdraft count mismatch between merged table and accounts",
			slog.Int("table", gotOverdrafts), slog.Int("accounts", wantOverdrafts))
	}
}
