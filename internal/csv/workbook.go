package csv

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kalij01/ecobank-report-codes/internal/models"
)

func (p *Parser) parseWorkbook() (*models.Survey, error) {
	f, err := excelize.OpenFile(p.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return Decode(newRowReader(rows), p.filename)
}

// rowReader feeds spreadsheet rows to the CSV decoder. Spreadsheet rows drop
// trailing empty cells, so every data row is padded or cut to the header
// width.
type rowReader struct {
	rows  [][]string
	width int
	next  int
}

func newRowReader(rows [][]string) *rowReader {
	r := &rowReader{rows: rows}
	if len(rows) > 0 {
		r.width = len(rows[0])
	}
	return r
}

func (r *rowReader) Read() ([]string, error) {
	for r.next < len(r.rows) {
		row := r.rows[r.next]
		r.next++

		if r.next == 1 {
			return row, nil
		}
		// Blank lines are skipped, as encoding/csv does.
		if len(row) == 0 {
			continue
		}

		record := make([]string, r.width)
		copy(record, row)
		return record, nil
	}
	return nil, io.EOF
}
