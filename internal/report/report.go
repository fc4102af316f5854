// Package report renders reconciliation results: a two-sheet detail
// workbook splitting resolved from pending rows, a CSV frequency summary
// by status, and a console summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"conciliador/internal/domain"
)

const (
	resolvedSheet = "coincidencias"
	pendingSheet  = "pendientes"

	dateLayout = "2006-01-02"
)

var detailHeader = []interface{}{
	"fecha_banco", "descripcion_banco", "valor_banco",
	"fecha_conta", "detalle_conta", "valor_conta",
	"diferencia", "estado",
}

// StatusCount is one line of the frequency summary.
type StatusCount struct {
	Status domain.MatchStatus
	Total  int
}

// Partition splits the ordered result rows into resolved and pending
// views, preserving relative order within each.
func Partition(results []domain.MatchResult) (resolved, pending []domain.MatchResult) {
	for _, res := range results {
		if res.Status.Resolved() {
			resolved = append(resolved, res)
		} else {
			pending = append(pending, res)
		}
	}
	return resolved, pending
}

// Summary tallies results by status, most frequent first. Ties break on
// status name so the output is reproducible.
func Summary(results []domain.MatchResult) []StatusCount {
	counts := make(map[domain.MatchStatus]int)
	for _, res := range results {
		counts[res.Status]++
	}

	summary := make([]StatusCount, 0, len(counts))
	for status, total := range counts {
		summary = append(summary, StatusCount{Status: status, Total: total})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Total != summary[j].Total {
			return summary[i].Total > summary[j].Total
		}
		return summary[i].Status < summary[j].Status
	})

	return summary
}

// WriteDetailWorkbook writes the detail workbook: resolved rows on the
// "coincidencias" sheet, pending rows on "pendientes".
func WriteDetailWorkbook(path string, results []domain.MatchResult) error {
	resolved, pending := Partition(results)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resolvedSheet); err != nil {
		return fmt.Errorf("renaming detail sheet: %w", err)
	}
	if _, err := f.NewSheet(pendingSheet); err != nil {
		return fmt.Errorf("creating pending sheet: %w", err)
	}

	if err := writeSheet(f, resolvedSheet, resolved); err != nil {
		return err
	}
	if err := writeSheet(f, pendingSheet, pending); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing detail workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, results []domain.MatchResult) error {
	if err := f.SetSheetRow(sheet, "A1", &detailHeader); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}

	for i, res := range results {
		row := detailRow(res)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}

func detailRow(res domain.MatchResult) []interface{} {
	row := make([]interface{}, 8)
	for i := range row {
		row[i] = ""
	}

	if res.Bank != nil {
		row[0] = res.Bank.Date.Format(dateLayout)
		row[1] = res.Bank.Description
		row[2] = res.Bank.Amount.String()
	}
	if res.Accounting != nil {
		if res.Accounting.DateValid {
			row[3] = res.Accounting.Date.Format(dateLayout)
		}
		row[4] = res.Accounting.Detail
		row[5] = res.Accounting.Amount.String()
	}
	if res.Difference != nil {
		row[6] = res.Difference.String()
	}
	row[7] = string(res.Status)

	return row
}

// WriteSummaryCSV writes the status frequency table as estado,total.
func WriteSummaryCSV(path string, summary []StatusCount) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"estado", "total"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for _, sc := range summary {
		if err := w.Write([]string{string(sc.Status), strconv.Itoa(sc.Total)}); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}

// PrintSummary writes the console summary: status counts plus the row
// drop counters from normalization.
func PrintSummary(w io.Writer, result domain.ReconciliationResult) {
	fmt.Fprintln(w, "Reconciliation summary:")
	for _, sc := range Summary(result.Results) {
		fmt.Fprintf(w, "  %-16s %d\n", sc.Status, sc.Total)
	}

	if result.BankRowsDropped > 0 {
		fmt.Fprintf(w, "  bank rows dropped: %d\n", result.BankRowsDropped)
	}
	if result.AccountingRowsDropped > 0 {
		fmt.Fprintf(w, "  accounting rows dropped: %d\n", result.AccountingRowsDropped)
	}
	if result.AccountingUnparseableDates > 0 {
		fmt.Fprintf(w, "  accounting rows with unparseable dates: %d\n", result.AccountingUnparseableDates)
	}
}
