package results

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ErrFileMissing indicates the results file does not exist at the given path,
// typically because the simulation has not produced it yet.
var ErrFileMissing = errors.New("results file not found")

// ParseError indicates the results file exists but could not be interpreted
// as a delimited table. Row is 1-based counting the header, 0 when the fault
// is not tied to a specific row.
type ParseError struct {
	Path   string
	Row    int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("failed to parse %s at row %d: %s", e.Path, e.Row, e.Reason)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Reason)
}

// Table is the generic column/row structure loaded from a results file.
// Columns are discovered from the header row; no schema is assumed. Every
// row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Load reads and parses the results file from scratch on every call.
//
// Ragged rows are handled deliberately: rows shorter than the header are
// padded with empty cells (the simulation occasionally omits trailing
// columns), rows wider than the header are rejected as a parse error since
// there is no column to attribute the extra cells to.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
		}
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: path, Reason: "file is empty"}
	}
	if err != nil {
		return nil, &ParseError{Path: path, Row: 1, Reason: err.Error()}
	}

	table := &Table{Columns: header}

	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, &ParseError{Path: path, Row: rowNum, Reason: err.Error()}
		}

		if len(record) > len(header) {
			return nil, &ParseError{
				Path: path,
				Row:  rowNum,
				Reason: fmt.Sprintf("row has %d cells but header has %d columns",
					len(record), len(header)),
			}
		}
		for len(record) < len(header) {
			record = append(record, "")
		}

		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}
