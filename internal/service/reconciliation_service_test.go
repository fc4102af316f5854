package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conciliador/internal/domain"
	"conciliador/internal/matcher"
	"conciliador/internal/service"
)

type stubBankSource struct {
	rows []domain.BankRow
	err  error
}

func (s *stubBankSource) ReadRows() ([]domain.BankRow, error) {
	return s.rows, s.err
}

type stubAccountingSource struct {
	table domain.Table
	err   error
}

func (s *stubAccountingSource) ReadTable() (domain.Table, error) {
	return s.table, s.err
}

func TestRun(t *testing.T) {
	bank := &stubBankSource{rows: []domain.BankRow{
		{Fecha: "05/03", Descripcion: "PAGO X", Valor: "150,00"},
		{Fecha: "06/03", Descripcion: "PAGO Y", Valor: "500,00"},
		{Fecha: "", Descripcion: "roto", Valor: ""},
	}}
	accounting := &stubAccountingSource{table: domain.Table{
		Header: []string{"fecha", "detalle", "debitos", "creditos"},
		Rows: [][]string{
			{"05/03/2025", "detalle A", "", "150,00"},
			{"06/03/2025", "detalle B", "480,00", ""},
			{"sin fecha", "detalle C", "", "10,00"},
		},
	}}

	svc := service.NewReconciliationService(bank, accounting, matcher.NewReconciler(), 2025)

	result, err := svc.Run()
	require.NoError(t, err)

	// 2 usable bank records plus 1 unmatched accounting record.
	require.Len(t, result.Results, 3)
	assert.Equal(t, domain.StatusExact, result.Results[0].Status)
	assert.Equal(t, domain.StatusAmountDiffers, result.Results[1].Status)
	assert.Equal(t, "20", result.Results[1].Difference.String())
	assert.Equal(t, domain.StatusAccountingOnly, result.Results[2].Status)

	assert.Equal(t, 1, result.CountsByStatus[domain.StatusExact])
	assert.Equal(t, 1, result.CountsByStatus[domain.StatusAmountDiffers])
	assert.Equal(t, 1, result.CountsByStatus[domain.StatusAccountingOnly])

	assert.Equal(t, 1, result.BankRowsDropped)
	assert.Equal(t, 1, result.AccountingUnparseableDates)
}

func TestRunBankReadErrorAborts(t *testing.T) {
	readErr := &domain.InputReadError{Side: domain.SideBank, Err: errors.New("boom")}
	bank := &stubBankSource{err: readErr}
	accounting := &stubAccountingSource{}

	svc := service.NewReconciliationService(bank, accounting, matcher.NewReconciler(), 2025)

	_, err := svc.Run()
	require.Error(t, err)

	var got *domain.InputReadError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, domain.SideBank, got.Side)
	assert.Contains(t, err.Error(), "bank")
}

func TestRunSchemaErrorAbortsBeforeMatching(t *testing.T) {
	bank := &stubBankSource{rows: []domain.BankRow{
		{Fecha: "05/03", Descripcion: "PAGO X", Valor: "150,00"},
	}}
	accounting := &stubAccountingSource{table: domain.Table{
		Header: []string{"fecha", "debitos"},
		Rows:   [][]string{{"05/03/2025", "150,00"}},
	}}

	svc := service.NewReconciliationService(bank, accounting, matcher.NewReconciler(), 2025)

	_, err := svc.Run()

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, domain.SideAccounting, schemaErr.Side)
	assert.Contains(t, err.Error(), "accounting")
}

func TestRunEmptyBankInputAborts(t *testing.T) {
	bank := &stubBankSource{rows: []domain.BankRow{{Fecha: "", Valor: ""}}}
	accounting := &stubAccountingSource{}

	svc := service.NewReconciliationService(bank, accounting, matcher.NewReconciler(), 2025)

	_, err := svc.Run()

	var emptyErr *domain.EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, domain.SideBank, emptyErr.Side)
}
