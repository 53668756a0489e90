package rforecast

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"
)

var (
	ErrNoColumns         = errors.New("table requires at least one column")
	ErrMismatchedColumns = errors.New("table columns have different lengths")
	ErrUnknownColumn     = errors.New("column does not exist in table")
	ErrRowOutOfRange     = errors.New("row index is out of range")
)

// Column is a named sequence of values.
type Column struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Table is an ordered collection of equal-length columns with an optional
// time index, standing in for the labeled frame the extraction surface
// returns.
type Table struct {
	Index   []float64 `json:"index,omitempty"`
	Columns []Column  `json:"columns"`
}

// NewTable validates that all columns, and the index when present, have
// the same length.
func NewTable(index []float64, columns []Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	rows := len(columns[0].Values)
	for _, col := range columns[1:] {
		if len(col.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, expected %d, %w",
				col.Name, len(col.Values), rows, ErrMismatchedColumns)
		}
	}
	if index != nil && len(index) != rows {
		return nil, fmt.Errorf("index has %d values, expected %d, %w",
			len(index), rows, ErrMismatchedColumns)
	}
	return &Table{Index: index, Columns: columns}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		names = append(names, col.Name)
	}
	return names
}

// Column returns a copy of the named column's values.
func (t *Table) Column(name string) ([]float64, error) {
	for _, col := range t.Columns {
		if col.Name != name {
			continue
		}
		values := make([]float64, len(col.Values))
		copy(values, col.Values)
		return values, nil
	}
	return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("row %d of %d, %w", i, t.Len(), ErrRowOutOfRange)
	}
	row := make([]float64, 0, len(t.Columns))
	for _, col := range t.Columns {
		row = append(row, col.Values[i])
	}
	return row, nil
}

// TablePrint writes the table as aligned text.
func (t *Table) TablePrint(w io.Writer) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)

	header := ""
	if t.Index != nil {
		header = "time\t"
	}
	for _, col := range t.Columns {
		header += col.Name + "\t"
	}
	if _, err := fmt.Fprintf(tbl, "%s\n", header); err != nil {
		return err
	}

	for i := 0; i < t.Len(); i++ {
		row := ""
		if t.Index != nil {
			row = fmt.Sprintf("%.4f\t", t.Index[i])
		}
		for _, col := range t.Columns {
			row += fmt.Sprintf("%.4f\t", col.Values[i])
		}
		if _, err := fmt.Fprintf(tbl, "%s\n", row); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

// WriteCSV writes the table as CSV with a header row. NaN values are
// written as NA.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.Columns)+1)
	if t.Index != nil {
		header = append(header, "time")
	}
	header = append(header, t.ColumnNames()...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < t.Len(); i++ {
		record := make([]string, 0, len(header))
		if t.Index != nil {
			record = append(record, formatValue(t.Index[i]))
		}
		for _, col := range t.Columns {
			record = append(record, formatValue(col.Values[i]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the table as a single JSON document.
func (t *Table) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(t)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
