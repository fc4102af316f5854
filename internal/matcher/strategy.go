package matcher

import (
	"time"

	"github.com/shopspring/decimal"

	"conciliador/internal/domain"
)

// MatchingStrategy is one tier of the reconciliation search. Match
// returns the index of the first eligible not-yet-consumed accounting
// record in original input order, which makes tie-breaking deterministic:
// the earliest candidate wins, not the closest one.
type MatchingStrategy interface {
	Match(bank domain.BankRecord, accounting []domain.AccountingRecord, consumed []bool) (int, bool)

	// Status is the classification a hit from this tier carries.
	Status() domain.MatchStatus
}

// ExactStrategy matches on equal calendar date and equal absolute amount.
type ExactStrategy struct{}

// NewExactStrategy creates a new ExactStrategy
func NewExactStrategy() *ExactStrategy {
	return &ExactStrategy{}
}

func (s *ExactStrategy) Status() domain.MatchStatus { return domain.StatusExact }

// Match implements the MatchingStrategy interface
func (s *ExactStrategy) Match(bank domain.BankRecord, accounting []domain.AccountingRecord, consumed []bool) (int, bool) {
	bankAmount := bank.Amount.Abs()

	for i, rec := range accounting {
		if consumed[i] || !rec.DateValid {
			continue
		}
		if !sameDay(rec.Date, bank.Date) {
			continue
		}
		if !rec.Amount.Abs().Equal(bankAmount) {
			continue
		}
		return i, true
	}

	return 0, false
}

// AmountToleranceStrategy matches on equal calendar date when the
// absolute amounts differ by no more than Tolerance.
type AmountToleranceStrategy struct {
	Tolerance decimal.Decimal
}

// NewAmountToleranceStrategy creates a new AmountToleranceStrategy with the given tolerance
func NewAmountToleranceStrategy(tolerance decimal.Decimal) *AmountToleranceStrategy {
	return &AmountToleranceStrategy{Tolerance: tolerance}
}

func (s *AmountToleranceStrategy) Status() domain.MatchStatus { return domain.StatusAmountDiffers }

// Match implements the MatchingStrategy interface
func (s *AmountToleranceStrategy) Match(bank domain.BankRecord, accounting []domain.AccountingRecord, consumed []bool) (int, bool) {
	bankAmount := bank.Amount.Abs()

	for i, rec := range accounting {
		if consumed[i] || !rec.DateValid {
			continue
		}
		if !sameDay(rec.Date, bank.Date) {
			continue
		}
		diff := rec.Amount.Abs().Sub(bankAmount).Abs()
		if diff.GreaterThan(s.Tolerance) {
			continue
		}
		return i, true
	}

	return 0, false
}

// DateBufferStrategy matches on equal absolute amount when the dates are
// within BufferDays calendar days of each other.
type DateBufferStrategy struct {
	BufferDays int
}

// NewDateBufferStrategy creates a new DateBufferStrategy with the given buffer
func NewDateBufferStrategy(bufferDays int) *DateBufferStrategy {
	return &DateBufferStrategy{BufferDays: bufferDays}
}

func (s *DateBufferStrategy) Status() domain.MatchStatus { return domain.StatusDateDiffers }

// Match implements the MatchingStrategy interface
func (s *DateBufferStrategy) Match(bank domain.BankRecord, accounting []domain.AccountingRecord, consumed []bool) (int, bool) {
	bankAmount := bank.Amount.Abs()

	minDate := bank.Date.AddDate(0, 0, -s.BufferDays).Truncate(24 * time.Hour)
	maxDate := bank.Date.AddDate(0, 0, s.BufferDays).Truncate(24 * time.Hour)

	for i, rec := range accounting {
		if consumed[i] || !rec.DateValid {
			continue
		}
		recDay := rec.Date.Truncate(24 * time.Hour)
		if recDay.Before(minDate) || recDay.After(maxDate) {
			continue
		}
		if !rec.Amount.Abs().Equal(bankAmount) {
			continue
		}
		return i, true
	}

	return 0, false
}

func sameDay(a, b time.Time) bool {
	return a.Truncate(24 * time.Hour).Equal(b.Truncate(24 * time.Hour))
}
