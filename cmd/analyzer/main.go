package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/credalytics/deposit_analyzer/internal/attributes"
	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	"github.com/credalytics/deposit_analyzer/internal/core/services"
	"github.com/credalytics/deposit_analyzer/internal/dto"
	"github.com/credalytics/deposit_analyzer/internal/platform/config"
	"github.com/credalytics/deposit_analyzer/internal/utils/kyc"
)

// output is the JSON document written to stdout: the normalized report, the
// enriched transaction table, the household daily balance series, the
// consolidated owner profile and the computed attribute values.
type output struct {
	RunID         string                     `json:"run_id"`
	Report        *domain.Report             `json:"report"`
	Table         []*domain.Transaction      `json:"table"`
	DailyBalances []domain.DailyBalancePoint `json:"daily_balances"`
	Profile       *kyc.Profile               `json:"profile"`
	Attributes    map[string]decimal.Decimal `json:"attributes"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		return fmt.Errorf("usage: %s <report.json>", os.Args[0])
	}

	payload, err := os.ReadFile(os.Args[1])
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}
	var raw dto.RawReport
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("parsing report: %w", err)
	}

	rules, err := cfg.LoadRuleSet()
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}

	analyzer := services.NewAnalyzerService(
		services.NewReportService(services.WithExcludedAccountTypes(cfg.ExcludedAccountTypes)),
		services.NewBalanceService(),
	)

	result, err := analyzer.Analyze(context.Background(), &raw, rules)
	if err != nil {
		return err
	}

	values, err := attributes.NewRegistry().ComputeAll(result)
	if err != nil {
		return fmt.Errorf("computing attributes: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output{
		RunID:         result.RunID,
		Report:        result.Report,
		Table:         result.Table,
		DailyBalances: result.DailyBalances,
		Profile:       kyc.Consolidate(result.Report.Accounts),
		Attributes:    values,
	})
}
