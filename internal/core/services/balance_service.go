package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
)

// balanceService reconstructs the per-day balance series of each account and
// the household aggregate.
type balanceService struct {
	BaseService
}

// NewBalanceService creates a new daily balance reconstructor.
func NewBalanceService() portssvc.DailyBalanceSvc {
	return &balanceService{}
}

// AccountDailyBalances walks every calendar day of the account's coverage
// window. Days with a recorded end-of-day balance adopt it; days without
// carry the last known balance forward. Days before the first transaction
// carry the opening balance. An account without transactions reports its
// current balance on every day.
func (s *balanceService) AccountDailyBalances(ctx context.Context, account *domain.Account) []domain.DailyBalancePoint {
	ndays := daysBetween(account.OldestBalanceDate, account.MostRecentBalanceDate) + 1
	if ndays <= 0 {
		return nil
	}

	points := make([]domain.DailyBalancePoint, 0, ndays)
	if len(account.Transactions) == 0 {
		for day := account.OldestBalanceDate; !day.After(account.MostRecentBalanceDate); day = day.AddDate(0, 0, 1) {
			points = append(points, domain.DailyBalancePoint{Date: day, Balance: account.CurrentBalance})
		}
		return points
	}

	endOfDay := endOfDayBalances(account.Transactions)

	// Opening balance: the first row's balance minus its amount.
	first := account.Transactions[0]
	dayBalance := first.Balance.Sub(first.Amount)

	cursor := 0
	for day := account.OldestBalanceDate; !day.After(account.MostRecentBalanceDate); day = day.AddDate(0, 0, 1) {
		if day.Equal(endOfDay[cursor].Date) {
			dayBalance = endOfDay[cursor].Balance
			// The cursor never advances past the final recorded day.
			if cursor < len(endOfDay)-1 {
				cursor++
			}
		}
		points = append(points, domain.DailyBalancePoint{Date: day, Balance: dayBalance})
	}
	return points
}

// HouseholdDailyBalances sums the per-account series by date. Each account is
// computed independently and merged by addition, so account iteration order
// cannot change the result.
func (s *balanceService) HouseholdDailyBalances(ctx context.Context, report *domain.Report) []domain.DailyBalancePoint {
	totals := make(map[time.Time]decimal.Decimal)
	for _, acc := range report.Accounts {
		for _, point := range s.AccountDailyBalances(ctx, acc) {
			totals[point.Date] = totals[point.Date].Add(point.Balance)
		}
	}

	merged := make([]domain.DailyBalancePoint, 0, len(totals))
	for date, balance := range totals {
		merged = append(merged, domain.DailyBalancePoint{Date: date, Balance: balance})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date.Before(merged[j].Date) })

	s.LogDebug(ctx, "household daily balances merged",
		slog.Int("accounts", len(report.Accounts)), slog.Int("days", len(merged)))
	return merged
}

// endOfDayBalances returns the last transaction balance recorded for each
// distinct day present in the ledger, in date order. Transactions must
// already be sorted by (date, id).
func endOfDayBalances(transactions []*domain.Transaction) []domain.DailyBalancePoint {
	var balances []domain.DailyBalancePoint
	for _, txn := range transactions {
		if n := len(balances); n > 0 && balances[n-1].Date.Equal(txn.Date) {
			balances[n-1].Balance = txn.Balance
			continue
		}
		balances = append(balances, domain.DailyBalancePoint{Date: txn.Date, Balance: txn.Balance})
	}
	return balances
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
