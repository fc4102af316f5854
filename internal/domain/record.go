package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankRecord represents a normalized movement from the bank statement.
// Amount keeps the sign as printed on the statement.
type BankRecord struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// AccountingRecord represents a normalized movement from the accounting
// extract. Amount is credit minus debit, so credits are positive and
// debits negative.
//
// DateValid is false when the source date could not be parsed. Such a
// record stays in the sequence so it can be reported, but it never
// matches any bank date.
type AccountingRecord struct {
	Date      time.Time
	DateValid bool
	Detail    string
	Amount    decimal.Decimal
}
