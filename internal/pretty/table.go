// ABOUTME: Table: a grid of text cells with an optional title, filled row by row or cell by cell
// ABOUTME: Enforces row, column and cell-width limits; the first row is the header

// Package pretty renders small result tables for terminals.
package pretty

import (
	"errors"
	"fmt"
	"strings"
)

// Table limits.
const (
	MaxRows      = 1024
	MaxColumns   = 255
	MaxCellWidth = 255
)

var (
	// ErrOutOfRange is returned for cell coordinates outside the table and
	// when a limit would be exceeded.
	ErrOutOfRange = errors.New("pretty: out of range")

	// ErrShape is returned when a row or column does not match the table.
	ErrShape = errors.New("pretty: shape mismatch")

	// ErrInvalidText is returned for cell text containing control characters.
	ErrInvalidText = errors.New("pretty: invalid cell text")
)

// Table holds rows of equal length. The zero value is an empty table whose
// column count is fixed by the first AddRow or AddColumns.
type Table struct {
	title string
	rows  [][]string
	cols  int
}

// SetTitle sets the line rendered above the table.
func (t *Table) SetTitle(title string) {
	t.title = title
}

// Title returns the table title.
func (t *Table) Title() string {
	return t.title
}

// NumRows returns the number of rows, header included.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return t.cols
}

// AddRow appends a row. The first row of an empty table fixes the column
// count; later rows must match it. A rejected row leaves the table unchanged.
func (t *Table) AddRow(values ...string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: empty row", ErrShape)
	}
	if t.cols != 0 && len(values) != t.cols {
		return fmt.Errorf("%w: row has %d values, table has %d columns", ErrShape, len(values), t.cols)
	}
	if len(t.rows) >= MaxRows {
		return fmt.Errorf("%w: more than %d rows", ErrOutOfRange, MaxRows)
	}
	if err := validateAll(values); err != nil {
		return err
	}
	if t.cols == 0 {
		if err := t.AddColumns(len(values)); err != nil {
			return err
		}
	}
	t.rows = append(t.rows, append([]string(nil), values...))
	return nil
}

// AddRows appends n empty rows.
func (t *Table) AddRows(n int) error {
	if n < 0 || len(t.rows)+n > MaxRows {
		return fmt.Errorf("%w: %d rows", ErrOutOfRange, len(t.rows)+n)
	}
	for range n {
		t.rows = append(t.rows, make([]string, t.cols))
	}
	return nil
}

// AddColumns appends n empty cells to every row.
func (t *Table) AddColumns(n int) error {
	if n < 0 || t.cols+n > MaxColumns {
		return fmt.Errorf("%w: %d columns", ErrOutOfRange, t.cols+n)
	}
	t.cols += n
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], make([]string, n)...)
	}
	return nil
}

// AddColumn appends a column. On an empty table it creates one row per
// value; otherwise len(values) must equal NumRows. A rejected column leaves
// the table unchanged.
func (t *Table) AddColumn(values ...string) error {
	if len(t.rows) != 0 && len(values) != len(t.rows) {
		return fmt.Errorf("%w: column has %d values, table has %d rows", ErrShape, len(values), len(t.rows))
	}
	if len(values) > MaxRows {
		return fmt.Errorf("%w: %d rows", ErrOutOfRange, len(values))
	}
	if t.cols >= MaxColumns {
		return fmt.Errorf("%w: %d columns", ErrOutOfRange, t.cols+1)
	}
	if err := validateAll(values); err != nil {
		return err
	}
	if len(t.rows) == 0 {
		if err := t.AddRows(len(values)); err != nil {
			return err
		}
	}
	if err := t.AddColumns(1); err != nil {
		return err
	}
	for i, v := range values {
		t.rows[i][t.cols-1] = v
	}
	return nil
}

// SetText replaces the text of one cell.
func (t *Table) SetText(row, col int, text string) error {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= t.cols {
		return fmt.Errorf("%w: cell (%d, %d) in %dx%d table", ErrOutOfRange, row, col, len(t.rows), t.cols)
	}
	if err := validateText(text); err != nil {
		return err
	}
	t.rows[row][col] = text
	return nil
}

// Text returns the text of one cell, or "" outside the table.
func (t *Table) Text(row, col int) string {
	if row < 0 || row >= len(t.rows) || col < 0 || col >= t.cols {
		return ""
	}
	return t.rows[row][col]
}

// String renders t with the default Printer.
func (t *Table) String() string {
	return NewPrinter().Render(t)
}

func validateAll(values []string) error {
	for _, v := range values {
		if err := validateText(v); err != nil {
			return err
		}
	}
	return nil
}

func validateText(s string) error {
	if strings.ContainsAny(s, "\a\b\t\n\v\f\r") {
		return fmt.Errorf("%w: %q contains control characters", ErrInvalidText, s)
	}
	if w := Width(s); w > MaxCellWidth {
		return fmt.Errorf("%w: cell text is %d columns wide, limit %d", ErrOutOfRange, w, MaxCellWidth)
	}
	return nil
}
