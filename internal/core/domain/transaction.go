package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus distinguishes posted rows, which enter the ledger, from
// pending rows, which are dropped during normalization.
type TransactionStatus string

const (
	StatusPosted  TransactionStatus = "posted"
	StatusPending TransactionStatus = "pending"
)

// Transaction is one row of the enriched transaction table. Identity fields
// (ID, AccountNumber, Date) are fixed at ingestion; the enrichment fields are
// written in place by the analysis stages, in pipeline order.
type Transaction struct {
	ID            string            `json:"id"`
	AccountNumber int               `json:"accountNumber"`
	Date          time.Time         `json:"date"` // UTC midnight of the posting day
	Amount        decimal.Decimal   `json:"amount"`
	Description   string            `json:"description"`
	Status        TransactionStatus `json:"status"`

	// Balance is the running per-account balance immediately after this
	// transaction, in (date, id) order.
	Balance decimal.Decimal `json:"balance"`

	// CleanDescription is the lowercased description with everything but
	// letters and spaces removed and runs of spaces collapsed.
	CleanDescription string `json:"cleanDescription"`

	// SalaryCleanDescription is the secondary cleaning pass used only by the
	// salary-like tagger.
	SalaryCleanDescription string `json:"-"`

	// Categories holds the independent boolean category tags. Tags are not
	// mutually exclusive until the priority resolver runs.
	Categories map[string]bool `json:"categories"`

	IsWeekend bool `json:"isWeekend"`
	Month     int  `json:"month"`
	Week      int  `json:"week"` // ISO week number
	DayOfYear int  `json:"dayOfYear"`

	IsInternal        bool    `json:"isInternal"`
	MatchedInternalID *string `json:"matchedInternalID"` // partner leg, nil when unmatched

	IsSalaryLike bool `json:"isSalaryLike"`
}

// HasCategory reports whether the named tag is set. Missing entries read as
// false, so stages can probe categories the categorizer never evaluated.
func (t *Transaction) HasCategory(name string) bool {
	return t.Categories[name]
}

// SetCategory writes one tag, allocating the map on first use.
func (t *Transaction) SetCategory(name string, value bool) {
	if t.Categories == nil {
		t.Categories = make(map[string]bool)
	}
	t.Categories[name] = value
}

// IsInflow reports whether the amount is strictly positive.
func (t *Transaction) IsInflow() bool {
	return t.Amount.IsPositive()
}

// IsOutflow reports whether the amount is strictly negative.
func (t *Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// AmountCents returns the amount as integer cents. Transfer matching compares
// legs on this representation so equal amounts never miss on float noise.
func (t *Transaction) AmountCents() int64 {
	return t.Amount.Shift(2).Round(0).IntPart()
}
