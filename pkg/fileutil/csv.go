package fileutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader provides a helper/utility to read CSV file(s)
type CSVReader struct {
	FilePath string
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
	}
}

// ReadHeader reads ONLY the header of the specified CSV file
func (r *CSVReader) ReadHeader() ([]string, error) {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	return header, nil
}

// ReadAndProcessByRow reads and processes the data rows after the header,
// one at a time, allowing large files to stream.
func (r *CSVReader) ReadAndProcessByRow(processorFn func([]string) error) error {
	return r.process(true, processorFn)
}

// ReadAndProcessAllRows is like ReadAndProcessByRow but delivers every
// row, header included. Useful for files that have no single header, such
// as extracted statement tables with repeated banner lines.
func (r *CSVReader) ReadAndProcessAllRows(processorFn func([]string) error) error {
	return r.process(false, processorFn)
}

func (r *CSVReader) process(skipHeader bool, processorFn func([]string) error) error {
	f, err := os.Open(r.FilePath)
	if err != nil {
		return fmt.Errorf("opening a csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	if skipHeader {
		if _, err = reader.Read(); err != nil {
			return fmt.Errorf("reading CSV header: %w", err)
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		if err = processorFn(row); err != nil {
			return err
		}
	}

	return nil
}
