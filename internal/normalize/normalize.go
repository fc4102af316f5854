package normalize

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"conciliador/internal/domain"
)

// bankDateLayout parses the day/month cells the statement prints, once
// the operating year has been appended.
const bankDateLayout = "2/1/2006"

// accountingDateLayouts are tried in order; all are day-first except the
// ISO fallback, which is unambiguous.
var accountingDateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2006-01-02",
}

// Column header variants accepted on the accounting side. The extract
// sometimes loses its accents on export.
var (
	debitHeaders  = []string{"débitos", "debitos"}
	creditHeaders = []string{"créditos", "creditos"}
)

// AccountingStats reports the non-fatal row conditions seen while
// normalizing the accounting extract.
type AccountingStats struct {
	RowsDropped      int // unparseable debit/credit cells
	UnparseableDates int // kept with the DateValid=false marker
}

// ParseAmount converts a locale-formatted amount such as "1.234,56" to a
// decimal: spaces stripped, "." is the thousands separator, "," the
// decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// parseBankDate combines a day/month cell with the statement's operating
// year. The statement format carries no year of its own.
func parseBankDate(cell string, year int) (time.Time, error) {
	t, err := time.Parse(bankDateLayout, fmt.Sprintf("%s/%d", strings.TrimSpace(cell), year))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// parseAccountingDate tries the day-first layouts in order.
func parseAccountingDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	for _, layout := range accountingDateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeBank converts raw statement rows into canonical bank records.
// Rows missing a date or amount, or failing to parse, are dropped and
// counted; the count is returned so the caller can surface it. Zero
// usable records is a fatal condition.
func NormalizeBank(rows []domain.BankRow, year int) ([]domain.BankRecord, int, error) {
	records := make([]domain.BankRecord, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		fecha := strings.TrimSpace(row.Fecha)
		valor := strings.TrimSpace(row.Valor)
		if fecha == "" || valor == "" {
			dropped++
			continue
		}

		date, err := parseBankDate(fecha, year)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: dropping bank row, invalid date %q\n", fecha)
			dropped++
			continue
		}

		amount, err := ParseAmount(valor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: dropping bank row, invalid amount %q\n", valor)
			dropped++
			continue
		}

		records = append(records, domain.BankRecord{
			Date:        date,
			Description: strings.TrimSpace(row.Descripcion),
			Amount:      amount,
		})
	}

	if len(records) == 0 {
		return nil, dropped, &domain.EmptyInputError{Side: domain.SideBank}
	}

	return records, dropped, nil
}

// NormalizeAccounting converts the raw extract table into canonical
// accounting records, order preserved. Amount is credit minus debit; a
// missing debit or credit column contributes zero. Rows whose date fails
// to parse are kept with the DateValid=false marker and counted; rows
// whose amounts fail to parse are dropped and counted.
func NormalizeAccounting(tbl domain.Table) ([]domain.AccountingRecord, AccountingStats, error) {
	var stats AccountingStats

	cols := headerIndex(tbl.Header)
	if err := requireColumns(cols, "fecha", "detalle"); err != nil {
		return nil, stats, err
	}

	fechaIdx := cols["fecha"]
	detalleIdx := cols["detalle"]
	debitIdx := findColumn(cols, debitHeaders)
	creditIdx := findColumn(cols, creditHeaders)

	records := make([]domain.AccountingRecord, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		debit, err := amountCell(row, debitIdx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: dropping accounting row, invalid debit: %v\n", err)
			stats.RowsDropped++
			continue
		}
		credit, err := amountCell(row, creditIdx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: dropping accounting row, invalid credit: %v\n", err)
			stats.RowsDropped++
			continue
		}

		rec := domain.AccountingRecord{
			Detail: strings.TrimSpace(cell(row, detalleIdx)),
			Amount: credit.Sub(debit),
		}

		if date, ok := parseAccountingDate(cell(row, fechaIdx)); ok {
			rec.Date = date
			rec.DateValid = true
		} else {
			stats.UnparseableDates++
		}

		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, stats, &domain.EmptyInputError{Side: domain.SideAccounting}
	}

	return records, stats, nil
}

// headerIndex maps lower-cased header names to their column positions.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func requireColumns(cols map[string]int, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &domain.SchemaError{Side: domain.SideAccounting, Missing: missing}
	}
	return nil
}

// findColumn returns the position of the first header variant present,
// or -1 when the column is absent entirely.
func findColumn(cols map[string]int, variants []string) int {
	for _, name := range variants {
		if idx, ok := cols[name]; ok {
			return idx
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// amountCell parses a debit/credit cell; absent columns and blank cells
// are zero.
func amountCell(row []string, idx int) (decimal.Decimal, error) {
	s := strings.TrimSpace(cell(row, idx))
	if s == "" {
		return decimal.Zero, nil
	}
	return ParseAmount(s)
}
