package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
	"github.com/credalytics/deposit_analyzer/internal/utils/textnorm"
)

// categorizerService applies the keyword dictionaries and derives the
// calendar fields. The dictionaries and allow-lists are injected at
// construction; nothing here is hardcoded rule data.
type categorizerService struct {
	BaseService
	dict           domain.CategoryDictionary
	exactAllow     domain.AllowList
	containedAllow domain.AllowList
}

// CategorizerOption is a functional option for configuring the categorizer
type CategorizerOption func(*categorizerService)

// WithExactAllowList restricts which exact-match categories are evaluated.
func WithExactAllowList(allow domain.AllowList) CategorizerOption {
	return func(s *categorizerService) {
		s.exactAllow = allow
	}
}

// WithContainedAllowList restricts which contained-match categories are
// evaluated.
func WithContainedAllowList(allow domain.AllowList) CategorizerOption {
	return func(s *categorizerService) {
		s.containedAllow = allow
	}
}

// NewCategorizerService creates a new categorizer over the given dictionary
// pair. Empty allow-lists evaluate every category; the "none" sentinel
// disables a dictionary entirely.
func NewCategorizerService(dict domain.CategoryDictionary, options ...CategorizerOption) portssvc.CategorizerSvc {
	svc := &categorizerService{dict: dict}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Categorize tags every transaction against both dictionaries and fills the
// calendar-derived fields. Tags are independent; a transaction may carry any
// subset. The salary tag is forced false on outflows.
func (s *categorizerService) Categorize(ctx context.Context, table []*domain.Transaction) error {
	for _, txn := range table {
		lower := strings.ToLower(txn.Description)
		clean := textnorm.Clean(txn.Description)
		txn.CleanDescription = clean

		s.applyExact(txn, lower, clean)
		s.applyContained(txn, lower, clean)

		// Salary can only be an inflow.
		if txn.HasCategory(domain.CategorySalary) && txn.Amount.IsNegative() {
			txn.SetCategory(domain.CategorySalary, false)
		}

		fillCalendarFields(txn)
	}

	s.LogDebug(ctx, "transactions categorized", slog.Int("rows", len(table)))
	return nil
}

func (s *categorizerService) applyExact(txn *domain.Transaction, lower, clean string) {
	if s.exactAllow.Disabled() {
		return
	}
	for category, keywords := range s.dict.Exact {
		if !s.exactAllow.Allows(category) {
			continue
		}
		if txn.HasCategory(category) {
			continue
		}
		txn.SetCategory(category, false)
		for _, keyword := range keywords {
			// Digits survive only in the raw lowercase variant.
			haystack := clean
			if textnorm.ContainsDigit(keyword) {
				haystack = lower
			}
			if textnorm.HasToken(haystack, keyword) {
				txn.SetCategory(category, true)
				break
			}
		}
	}
}

func (s *categorizerService) applyContained(txn *domain.Transaction, lower, clean string) {
	if s.containedAllow.Disabled() {
		return
	}
	for category, keywords := range s.dict.Contained {
		if !s.containedAllow.Allows(category) {
			continue
		}
		if txn.HasCategory(category) {
			// OR-combined with the exact-match result.
			continue
		}
		txn.SetCategory(category, false)
		for _, keyword := range keywords {
			haystack := clean
			if textnorm.ContainsDigit(keyword) {
				haystack = lower
			}
			if strings.Contains(haystack, keyword) {
				txn.SetCategory(category, true)
				break
			}
		}
	}
}

func fillCalendarFields(txn *domain.Transaction) {
	weekday := txn.Date.Weekday()
	txn.IsWeekend = weekday == time.Saturday || weekday == time.Sunday
	txn.Month = int(txn.Date.Month())
	_, txn.Week = txn.Date.ISOWeek()
	txn.DayOfYear = txn.Date.YearDay()
}
