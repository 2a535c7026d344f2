package services

import (
	"context"
	"log/slog"

	"github.com/credalytics/deposit_analyzer/internal/core/domain"
	portssvc "github.com/credalytics/deposit_analyzer/internal/core/ports/services"
)

// priorityService forces an excluded category false wherever any of its
// priority categories fired. Rules only ever turn tags off, never on, so
// they are independent and their application order cannot change the result.
type priorityService struct {
	BaseService
	rules domain.PriorityRules
}

// NewPriorityService creates a new priority resolver over the given rules.
func NewPriorityService(rules domain.PriorityRules) portssvc.PriorityResolverSvc {
	return &priorityService{rules: rules}
}

// Resolve applies every rule to every transaction. Applying the rule set
// twice yields the same tags as applying it once.
func (s *priorityService) Resolve(ctx context.Context, table []*domain.Transaction) error {
	suppressed := 0
	for _, txn := range table {
		for excluded, priorities := range s.rules {
			if !txn.HasCategory(excluded) {
				continue
			}
			for _, priority := range priorities {
				if txn.HasCategory(priority) {
					txn.SetCategory(excluded, false)
					suppressed++
					break
				}
			}
		}
	}

	s.LogDebug(ctx, "priority rules resolved",
		slog.Int("rules", len(s.rules)), slog.Int("suppressed", suppressed))
	return nil
}
