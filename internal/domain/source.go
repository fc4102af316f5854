package domain

// BankRow is one raw cell tuple extracted from the bank statement table,
// before any normalization. Cell positions follow the statement layout.
type BankRow struct {
	Fecha       string
	Descripcion string
	Valor       string
}

// Table is the raw shape of the accounting extract: a header row naming
// the columns plus the data rows beneath it.
type Table struct {
	Header []string
	Rows   [][]string
}

// BankSource delivers the raw statement rows. Implementations filter out
// header and banner lines before returning; data rows pass through even
// when incomplete so the normalizer can count the drops.
type BankSource interface {
	ReadRows() ([]BankRow, error)
}

// AccountingSource delivers the raw accounting extract as a table.
type AccountingSource interface {
	ReadTable() (Table, error)
}
