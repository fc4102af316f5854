package repository

import (
	"strings"

	"conciliador/internal/domain"
	"conciliador/pkg/fileutil"
)

// Statement table layout: fecha, descripcion, sucursal, dcto, valor, saldo.
const (
	bankFechaCol       = 0
	bankDescripcionCol = 1
	bankValorCol       = 4
)

// Banner lines the table extraction leaves behind. Filtering them is this
// source's job; incomplete data rows still pass through so the normalizer
// can count them.
var (
	bankHeaderSentinels = []string{"FECHA", "RESUMEN"}
	bankBannerSentinels = []string{"SALDO PROMEDIO", "CUPO", "RETENCION"}
)

// CSVBankSource implements the BankSource interface for a CSV export of
// the extracted bank statement table.
type CSVBankSource struct {
	FilePath string
}

// NewCSVBankSource creates a new CSVBankSource
func NewCSVBankSource(filePath string) *CSVBankSource {
	return &CSVBankSource{FilePath: filePath}
}

// ReadRows reads the statement rows, filtering header and banner lines.
func (s *CSVBankSource) ReadRows() ([]domain.BankRow, error) {
	reader := fileutil.NewCSVReader(s.FilePath)

	var rows []domain.BankRow
	err := reader.ReadAndProcessAllRows(func(row []string) error {
		if isBankNoise(row) {
			return nil
		}
		rows = append(rows, domain.BankRow{
			Fecha:       bankCell(row, bankFechaCol),
			Descripcion: bankCell(row, bankDescripcionCol),
			Valor:       bankCell(row, bankValorCol),
		})
		return nil
	})
	if err != nil {
		return nil, &domain.InputReadError{Side: domain.SideBank, Err: err}
	}

	return rows, nil
}

func isBankNoise(row []string) bool {
	if len(row) == 0 {
		return true
	}

	first := bankCell(row, bankFechaCol)
	for _, sentinel := range bankHeaderSentinels {
		if strings.Contains(first, sentinel) {
			return true
		}
	}

	desc := bankCell(row, bankDescripcionCol)
	for _, sentinel := range bankBannerSentinels {
		if strings.Contains(desc, sentinel) {
			return true
		}
	}

	return false
}

func bankCell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
