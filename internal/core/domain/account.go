package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is one deposit account extracted from a report. AccountNumber is a
// dense zero-based index assigned in ingestion order; the bank's own id is
// kept in OriginalID and never used downstream.
type Account struct {
	AccountNumber int    `json:"accountNumber"`
	OriginalID    string `json:"originalID"`
	OwnerName     string `json:"ownerName"`
	AccountType   string `json:"accountType"`

	// CurrentBalance is the latest known balance reported for the account,
	// the anchor for the running-balance reconstruction.
	CurrentBalance decimal.Decimal `json:"currentBalance"`

	// Report coverage window. Independent of whether transactions exist on
	// these exact days.
	OldestBalanceDate     time.Time `json:"oldestBalanceDate"`
	MostRecentBalanceDate time.Time `json:"mostRecentBalanceDate"`

	// Transactions are posted rows sorted by (date, id) ascending with the
	// running balance filled in.
	Transactions []*Transaction `json:"transactions"`

	// PII collected for KYC consolidation.
	Emails  []string `json:"emails,omitempty"`
	Phones  []string `json:"phones,omitempty"`
	Streets []string `json:"streets,omitempty"`
	Cities  []string `json:"cities,omitempty"`
	States  []string `json:"states,omitempty"`
	Zips    []string `json:"zips,omitempty"`

	// Counters recomputed from the retained transactions. The analyzer
	// cross-checks these against the merged table and logs on disagreement.
	NbInflows    int `json:"nbInflows"`
	NbOutflows   int `json:"nbOutflows"`
	NbOverdrafts int `json:"nbOverdrafts"`
	DaysSpan     int `json:"daysSpan"`

	OldestTransactionDate     time.Time `json:"oldestTransactionDate"`
	MostRecentTransactionDate time.Time `json:"mostRecentTransactionDate"`
}

// NbTransactions returns the number of retained (posted) transactions.
func (a *Account) NbTransactions() int {
	return len(a.Transactions)
}

// DailyBalancePoint is the balance attributed to one calendar day, either for
// a single account or, after aggregation, for the whole household.
type DailyBalancePoint struct {
	Date    time.Time       `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// Report is the normalized view of one raw report payload: all valid
// accounts, numbered, with their ledgers reconstructed.
type Report struct {
	Accounts []*Account `json:"accounts"`

	// MinDate and MaxDate span the balance coverage across accounts.
	MinDate time.Time `json:"minDate"`
	MaxDate time.Time `json:"maxDate"`
}

// NbTransactionsTotal sums retained transactions across accounts.
func (r *Report) NbTransactionsTotal() int {
	total := 0
	for _, acc := range r.Accounts {
		total += acc.NbTransactions()
	}
	return total
}
