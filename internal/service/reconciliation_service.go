package service

import (
	"conciliador/internal/domain"
	"conciliador/internal/normalize"
)

// ReconciliationService orchestrates one reconciliation run: read both
// raw sources, normalize, match. Any fatal input error aborts before the
// engine runs; per-row drops are carried in the result counters.
type ReconciliationService struct {
	bankSource       domain.BankSource
	accountingSource domain.AccountingSource
	matcher          domain.RecordMatcher
	year             int
}

// NewReconciliationService creates a new ReconciliationService. year is
// the operating year the statement's day/month dates belong to.
func NewReconciliationService(
	bankSource domain.BankSource,
	accountingSource domain.AccountingSource,
	matcher domain.RecordMatcher,
	year int,
) *ReconciliationService {
	return &ReconciliationService{
		bankSource:       bankSource,
		accountingSource: accountingSource,
		matcher:          matcher,
		year:             year,
	}
}

// Run performs the reconciliation and returns the ordered result rows
// plus the normalization counters.
func (s *ReconciliationService) Run() (domain.ReconciliationResult, error) {
	bankRows, err := s.bankSource.ReadRows()
	if err != nil {
		return domain.ReconciliationResult{}, err
	}

	bankRecords, bankDropped, err := normalize.NormalizeBank(bankRows, s.year)
	if err != nil {
		return domain.ReconciliationResult{}, err
	}

	table, err := s.accountingSource.ReadTable()
	if err != nil {
		return domain.ReconciliationResult{}, err
	}

	accountingRecords, stats, err := normalize.NormalizeAccounting(table)
	if err != nil {
		return domain.ReconciliationResult{}, err
	}

	results := s.matcher.Reconcile(bankRecords, accountingRecords)

	counts := make(map[domain.MatchStatus]int)
	for _, res := range results {
		counts[res.Status]++
	}

	return domain.ReconciliationResult{
		Results:                    results,
		CountsByStatus:             counts,
		BankRowsDropped:            bankDropped,
		AccountingRowsDropped:      stats.RowsDropped,
		AccountingUnparseableDates: stats.UnparseableDates,
	}, nil
}
