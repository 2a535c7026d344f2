package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
	"github.com/credalytics/deposit_analyzer/internal/utils/textnorm"
)

// salaryLikeService detects recurring payroll-like inflows: transactions
// whose descriptions repeat over enough occurrences and enough distinct
// months inside the trailing analysis window. The comparison is quadratic in
// the candidate count, which is acceptable at per-account volumes of
// hundreds of rows.
type salaryLikeService struct {
	BaseService
	params domain.SalaryLikeParams
}

// NewSalaryLikeService creates a new salary-like tagger with the given
// tuning.
func NewSalaryLikeService(params domain.SalaryLikeParams) portssvc.SalaryLikeSvc {
	return &salaryLikeService{params: params}
}

// TagSalaryLike flags every member of an accepted recurrence cluster. When
// the available history is shorter than the default window, the window and
// the recurrence/month thresholds shrink proportionally (with floors); when
// it is below the minimum span, tagging is skipped entirely and every row
// stays untagged.
func (s *salaryLikeService) TagSalaryLike(ctx context.Context, table []*domain.Transaction, reportMaxDate time.Time) error {
	if len(table) == 0 {
		return nil
	}
	for _, txn := range table {
		txn.IsSalaryLike = false
	}

	minDate := table[0].Date
	for _, txn := range table {
		if txn.Date.Before(minDate) {
			minDate = txn.Date
		}
	}
	historyDays := daysBetween(minDate, reportMaxDate)

	windowDays := s.params.WindowDays
	minRecurrence := s.params.MinRecurrence
	minMonths := s.params.MinDistinctMonths
	if windowDays > historyDays {
		windowDays = historyDays
		minRecurrence = historyDays/30 - 1
		minMonths = minRecurrence - 1
		if minRecurrence == 1 {
			minRecurrence = 2
		}
		if minMonths < 2 {
			minMonths = 2
		}
	}

	if historyDays < s.params.MinHistoryDays {
		s.LogInfo(ctx, "salary-like tagging skipped, history too short",
			slog.Int("history_days", historyDays),
			slog.Int("min_history_days", s.params.MinHistoryDays))
		return nil
	}

	candidates := s.collectCandidates(table, reportMaxDate, windowDays)
	for _, txn := range candidates {
		txn.SalaryCleanDescription = salaryClean(txn.CleanDescription, s.params.Keywords)
	}

	splits := make([][]string, len(candidates))
	for i, txn := range candidates {
		splits[i] = textnorm.FirstWords(txn.SalaryCleanDescription, s.params.NWords)
	}

	tagged := 0
	for i := 0; i < len(candidates)-1; i++ {
		cluster := []int{i}
		refLen := len(splits[i])
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].SalaryCleanDescription == "" {
				continue
			}
			overlap := textnorm.OverlapCount(splits[i], splits[j])
			switch {
			case refLen <= 3 && overlap == refLen && len(splits[j]) > 0 && overlap > 0:
				cluster = append(cluster, j)
			case refLen == 4 && overlap >= 3:
				cluster = append(cluster, j)
			case overlap >= 4:
				cluster = append(cluster, j)
			}
		}

		if len(cluster) < minRecurrence {
			continue
		}
		if minMonths > 1 && distinctMonths(candidates, cluster) < minMonths {
			continue
		}

		for _, k := range cluster {
			if !candidates[k].IsSalaryLike {
				tagged++
			}
			candidates[k].IsSalaryLike = true
		}
		// Salary-like can only be an inflow.
		for _, txn := range table {
			if txn.Amount.IsNegative() {
				txn.IsSalaryLike = false
			}
		}
	}

	s.LogDebug(ctx, "salary-like inflows tagged",
		slog.Int("candidates", len(candidates)), slog.Int("tagged", tagged))
	return nil
}

// collectCandidates restricts the table to inflows inside the window, above
// the dollar floor, not internal, not excluded by false-positive keywords
// and not already tagged investment or taxes. Table order is preserved.
func (s *salaryLikeService) collectCandidates(table []*domain.Transaction, lastDate time.Time, windowDays int) []*domain.Transaction {
	firstDate := lastDate.AddDate(0, 0, -windowDays)
	floor := decimal.NewFromFloat(s.params.MinAmount)

	var candidates []*domain.Transaction
	for _, txn := range table {
		if txn.Date.Before(firstDate) || txn.Date.After(lastDate) {
			continue
		}
		if !txn.Amount.IsPositive() || txn.Amount.Abs().LessThanOrEqual(floor) {
			continue
		}
		if txn.IsInternal {
			continue
		}
		if excludedByKeywords(txn.CleanDescription, s.params.Keywords) {
			continue
		}
		if txn.HasCategory(domain.CategoryInvestment) || txn.HasCategory(domain.CategoryTaxes) {
			continue
		}
		candidates = append(candidates, txn)
	}
	return candidates
}

func excludedByKeywords(cleanDescription string, kw domain.SalaryLikeKeywords) bool {
	for _, keyword := range kw.ExcludeContained {
		if strings.Contains(cleanDescription, keyword) {
			return true
		}
	}
	for _, keyword := range kw.ExcludeExact {
		if textnorm.HasToken(cleanDescription, keyword) {
			return true
		}
	}
	return false
}

// salaryClean is the secondary cleaning pass: configured substrings are
// deleted, configured tokens are dropped, and spaces collapse again.
func salaryClean(cleanDescription string, kw domain.SalaryLikeKeywords) string {
	cleaned := cleanDescription
	for _, keyword := range kw.StripContained {
		cleaned = strings.ReplaceAll(cleaned, keyword, "")
	}

	if len(kw.StripExact) > 0 {
		drop := make(map[string]struct{}, len(kw.StripExact))
		for _, keyword := range kw.StripExact {
			drop[keyword] = struct{}{}
		}
		var kept []string
		for _, tok := range strings.Fields(cleaned) {
			if _, ok := drop[tok]; !ok {
				kept = append(kept, tok)
			}
		}
		cleaned = strings.Join(kept, " ")
	}

	return textnorm.CollapseSpaces(cleaned)
}

func distinctMonths(candidates []*domain.Transaction, cluster []int) int {
	months := make(map[time.Month]struct{}, len(cluster))
	for _, k := range cluster {
		months[candidates[k].Date.Month()] = struct{}{}
	}
	return len(months)
}
