package matcher

import (
	"github.com/shopspring/decimal"

	"conciliador/internal/domain"
)

// Default tolerances. Both are overridable per run.
var (
	// DefaultAmountTolerance is the maximum absolute-amount gap the
	// amount-tolerance tier accepts, in currency units.
	DefaultAmountTolerance = decimal.NewFromInt(100)
)

// DefaultDateBufferDays is the calendar-day window of the date-buffer tier.
const DefaultDateBufferDays = 1

// Reconciler implements the RecordMatcher interface with a fixed
// priority order of tiers: a hit in an earlier tier always wins.
type Reconciler struct {
	strategies []MatchingStrategy
}

// NewReconciler creates a new Reconciler with the given strategies. With
// no arguments it uses the default three tiers: exact, amount within
// DefaultAmountTolerance, date within DefaultDateBufferDays.
func NewReconciler(strategies ...MatchingStrategy) *Reconciler {
	if len(strategies) == 0 {
		strategies = []MatchingStrategy{
			NewExactStrategy(),
			NewAmountToleranceStrategy(DefaultAmountTolerance),
			NewDateBufferStrategy(DefaultDateBufferDays),
		}
	}

	return &Reconciler{strategies: strategies}
}

// Reconcile pairs bank records with accounting records. Each bank record
// is processed in input order and emits exactly one result row; each
// accounting record is consumed at most once across the whole run.
// Leftover accounting records are appended as accounting_only rows in
// their original input order.
//
// Consumption state lives in a slice private to this call, so concurrent
// runs over the same inputs never alias each other.
func (r *Reconciler) Reconcile(bank []domain.BankRecord, accounting []domain.AccountingRecord) []domain.MatchResult {
	consumed := make([]bool, len(accounting))
	results := make([]domain.MatchResult, 0, len(bank))

	for i := range bank {
		results = append(results, r.matchOne(&bank[i], accounting, consumed))
	}

	for j := range accounting {
		if consumed[j] {
			continue
		}
		results = append(results, domain.MatchResult{
			Accounting: &accounting[j],
			Status:     domain.StatusAccountingOnly,
		})
	}

	return results
}

func (r *Reconciler) matchOne(bank *domain.BankRecord, accounting []domain.AccountingRecord, consumed []bool) domain.MatchResult {
	for _, strategy := range r.strategies {
		idx, found := strategy.Match(*bank, accounting, consumed)
		if !found {
			continue
		}

		consumed[idx] = true
		diff := bank.Amount.Sub(accounting[idx].Amount)

		return domain.MatchResult{
			Bank:       bank,
			Accounting: &accounting[idx],
			Difference: &diff,
			Status:     strategy.Status(),
		}
	}

	return domain.MatchResult{
		Bank:   bank,
		Status: domain.StatusBankOnly,
	}
}
