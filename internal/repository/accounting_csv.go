package repository

import (
	"conciliador/internal/domain"
	"conciliador/pkg/fileutil"
)

// CSVAccountingSource implements the AccountingSource interface for a CSV
// export of the accounting extract. The first row is the header.
type CSVAccountingSource struct {
	FilePath string
}

// NewCSVAccountingSource creates a new CSVAccountingSource
func NewCSVAccountingSource(filePath string) *CSVAccountingSource {
	return &CSVAccountingSource{FilePath: filePath}
}

// ReadTable reads the extract as a header row plus data rows.
func (s *CSVAccountingSource) ReadTable() (domain.Table, error) {
	reader := fileutil.NewCSVReader(s.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return domain.Table{}, &domain.InputReadError{Side: domain.SideAccounting, Err: err}
	}

	var rows [][]string
	err = reader.ReadAndProcessByRow(func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return domain.Table{}, &domain.InputReadError{Side: domain.SideAccounting, Err: err}
	}

	return domain.Table{Header: header, Rows: rows}, nil
}
