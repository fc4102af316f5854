package repository

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"conciliador/internal/domain"
)

// XLSXAccountingSource implements the AccountingSource interface for an
// Excel workbook. It reads the first sheet unless Sheet is set; the first
// row is the header.
type XLSXAccountingSource struct {
	FilePath string
	Sheet    string
}

// NewXLSXAccountingSource creates a new XLSXAccountingSource
func NewXLSXAccountingSource(filePath string) *XLSXAccountingSource {
	return &XLSXAccountingSource{FilePath: filePath}
}

// ReadTable reads the extract as a header row plus data rows.
func (s *XLSXAccountingSource) ReadTable() (domain.Table, error) {
	f, err := excelize.OpenFile(s.FilePath)
	if err != nil {
		return domain.Table{}, &domain.InputReadError{Side: domain.SideAccounting, Err: err}
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return domain.Table{}, &domain.InputReadError{
				Side: domain.SideAccounting,
				Err:  fmt.Errorf("workbook has no sheets"),
			}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Table{}, &domain.InputReadError{Side: domain.SideAccounting, Err: err}
	}
	if len(rows) == 0 {
		return domain.Table{}, &domain.InputReadError{
			Side: domain.SideAccounting,
			Err:  fmt.Errorf("sheet %q is empty", sheet),
		}
	}

	return domain.Table{Header: rows[0], Rows: rows[1:]}, nil
}

// NewAccountingSource picks a source implementation from the file
// extension: .xlsx/.xlsm open as a workbook, anything else as CSV.
func NewAccountingSource(filePath string) domain.AccountingSource {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xlsm":
		return NewXLSXAccountingSource(filePath)
	}
	return NewCSVAccountingSource(filePath)
}
