package domain

import "github.com/shopspring/decimal"

// MatchStatus classifies a reconciliation result row.
type MatchStatus string

const (
	StatusExact          MatchStatus = "exact"
	StatusAmountDiffers  MatchStatus = "amount_differs"
	StatusDateDiffers    MatchStatus = "date_differs"
	StatusBankOnly       MatchStatus = "bank_only"
	StatusAccountingOnly MatchStatus = "accounting_only"
)

// Resolved reports whether the status represents a paired result. The
// one-sided statuses are "pending" and need manual follow-up.
func (s MatchStatus) Resolved() bool {
	switch s {
	case StatusExact, StatusAmountDiffers, StatusDateDiffers:
		return true
	}
	return false
}

// MatchResult is one row of the reconciliation output. Bank is nil only
// for accounting_only rows, Accounting is nil only for bank_only rows.
// Difference is bank amount minus accounting amount, present only when
// both sides are.
type MatchResult struct {
	Bank       *BankRecord
	Accounting *AccountingRecord
	Difference *decimal.Decimal
	Status     MatchStatus
}

// ReconciliationResult contains the ordered result rows of one run plus
// the normalization counters the caller must surface.
type ReconciliationResult struct {
	Results                    []MatchResult
	CountsByStatus             map[MatchStatus]int
	BankRowsDropped            int
	AccountingRowsDropped      int
	AccountingUnparseableDates int
}
