package services

import (
	"context"
	"log/slog"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
	"github.com/credalytics/deposit_analyzer/internal/utils/textnorm"
)

// transferService pairs the two legs of a transfer between the customer's
// own accounts: same day, different account, exactly opposite amount, both
// already tagged transfer-category.
type transferService struct {
	BaseService
}

// NewTransferService creates a new internal transfer tagger.
func NewTransferService() portssvc.TransferTaggerSvc {
	return &transferService{}
}

// transferLeg is the compact view of one transfer-tagged row used during
// matching. Amounts are integer cents so equality never misses on float
// noise.
type transferLeg struct {
	tableIndex int
	account    int
	day        int64
	cents      int64
	matched    bool
}

// TagInternalTransfers walks the inbound (positive) transfer legs in table
// order and greedily claims, for each, the unmatched same-day opposite-amount
// leg in another account. Ties are broken by the smallest Jaccard k=1
// distance between descriptions; the first minimum wins. A leg consumed by a
// match is unavailable to later inbound legs; there is no backtracking.
func (s *transferService) TagInternalTransfers(ctx context.Context, table []*domain.Transaction) error {
	var legs []transferLeg
	for i, txn := range table {
		if !txn.HasCategory(domain.CategoryTransfer) {
			continue
		}
		legs = append(legs, transferLeg{
			tableIndex: i,
			account:    txn.AccountNumber,
			day:        txn.Date.Unix(),
			cents:      txn.AmountCents(),
		})
	}

	matches := 0
	for i := range legs {
		inbound := &legs[i]
		if inbound.cents <= 0 {
			continue
		}

		best := -1
		bestDistance := 0.0
		for j := range legs {
			candidate := &legs[j]
			if candidate.matched ||
				candidate.day != inbound.day ||
				candidate.account == inbound.account ||
				candidate.cents != -inbound.cents {
				continue
			}
			distance := textnorm.JaccardDistance(
				table[inbound.tableIndex].Description,
				table[candidate.tableIndex].Description,
			)
			if best < 0 || distance < bestDistance {
				best = j
				bestDistance = distance
			}
		}
		if best < 0 {
			continue
		}

		inTxn := table[inbound.tableIndex]
		outTxn := table[legs[best].tableIndex]
		inTxn.IsInternal = true
		outTxn.IsInternal = true
		inTxn.MatchedInternalID = &outTxn.ID
		outTxn.MatchedInternalID = &inTxn.ID
		inbound.matched = true
		legs[best].matched = true
		matches++
	}

	s.LogDebug(ctx, "internal transfers tagged",
		slog.Int("transfer_legs", len(legs)), slog.Int("matches", matches))
	return nil
}
