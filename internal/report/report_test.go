package report_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"conciliador/internal/domain"
	"conciliador/internal/report"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleResults() []domain.MatchResult {
	bank := domain.BankRecord{Date: date(2025, 3, 5), Description: "PAGO X", Amount: dec("150.00")}
	acct := domain.AccountingRecord{Date: date(2025, 3, 5), DateValid: true, Detail: "detalle A", Amount: dec("150.00")}
	diff := dec("0")

	leftover := domain.AccountingRecord{Date: date(2025, 3, 9), DateValid: true, Detail: "detalle B", Amount: dec("99.00")}
	lonely := domain.BankRecord{Date: date(2025, 3, 7), Description: "PAGO Y", Amount: dec("300.00")}

	return []domain.MatchResult{
		{Bank: &bank, Accounting: &acct, Difference: &diff, Status: domain.StatusExact},
		{Bank: &lonely, Status: domain.StatusBankOnly},
		{Accounting: &leftover, Status: domain.StatusAccountingOnly},
	}
}

func TestPartition(t *testing.T) {
	resolved, pending := report.Partition(sampleResults())

	require.Len(t, resolved, 1)
	assert.Equal(t, domain.StatusExact, resolved[0].Status)

	require.Len(t, pending, 2)
	assert.Equal(t, domain.StatusBankOnly, pending[0].Status)
	assert.Equal(t, domain.StatusAccountingOnly, pending[1].Status)
}

func TestSummaryOrdering(t *testing.T) {
	results := []domain.MatchResult{
		{Status: domain.StatusBankOnly},
		{Status: domain.StatusBankOnly},
		{Status: domain.StatusExact},
		{Status: domain.StatusAccountingOnly},
	}

	summary := report.Summary(results)
	require.Len(t, summary, 3)

	assert.Equal(t, domain.StatusBankOnly, summary[0].Status)
	assert.Equal(t, 2, summary[0].Total)

	// Ties break on status name for reproducible output.
	assert.Equal(t, domain.StatusAccountingOnly, summary[1].Status)
	assert.Equal(t, domain.StatusExact, summary[2].Status)
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumen.csv")

	err := report.WriteSummaryCSV(path, report.Summary(sampleResults()))
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"estado", "total"}, rows[0])
	for _, row := range rows[1:] {
		assert.Equal(t, "1", row[1])
	}
}

func TestWriteDetailWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detalle.xlsx")

	err := report.WriteDetailWorkbook(path, sampleResults())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	resolved, err := f.GetRows("coincidencias")
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "fecha_banco", resolved[0][0])
	assert.Equal(t, "2025-03-05", resolved[1][0])
	assert.Equal(t, "detalle A", resolved[1][4])
	assert.Equal(t, "exact", resolved[1][7])

	pending, err := f.GetRows("pendientes")
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "bank_only", pending[1][7])
	assert.Equal(t, "accounting_only", pending[2][7])
	assert.Equal(t, "detalle B", pending[2][4])
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	report.PrintSummary(&buf, domain.ReconciliationResult{
		Results:                    sampleResults(),
		BankRowsDropped:            2,
		AccountingUnparseableDates: 1,
	})

	out := buf.String()
	assert.Contains(t, out, "exact")
	assert.Contains(t, out, "bank rows dropped: 2")
	assert.Contains(t, out, "unparseable dates: 1")
}
