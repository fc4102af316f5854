package domain

// RecordMatcher pairs bank records with accounting records and emits one
// result row per bank record plus one per leftover accounting record.
type RecordMatcher interface {
	Reconcile(bank []BankRecord, accounting []AccountingRecord) []MatchResult
}
