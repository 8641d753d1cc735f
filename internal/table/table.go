// Package table defines the in-memory tabular model consumed by the
// inspection engine.
//
// A Table is an ordered sequence of named columns; every column holds the same
// number of cells. The engine treats tables as immutable: inspection never
// writes to a Table, and cleaning produces a new one. Read-only sharing across
// concurrent inspections is therefore safe.
//
// Cells are string-valued with an explicit missing flag, mirroring how loaders
// scan values (CSV fields, sql.NullString). A missing cell is distinct from an
// empty string unless a caller chooses to normalize empties away.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrColumnLength reports a structurally invalid table: columns of unequal
// length. This is a contract violation by the caller, not a data problem.
var ErrColumnLength = errors.New("table: columns have unequal lengths")

// Cell is a single value at a (row, column) position.
// Valid=false is the canonical missing marker.
type Cell struct {
	Value string
	Valid bool
}

// String returns a present cell.
func String(v string) Cell { return Cell{Value: v, Valid: true} }

// Missing returns the missing marker.
func Missing() Cell { return Cell{} }

// Column is an ordered sequence of cells under a name.
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered sequence of equally sized columns.
type Table struct {
	Columns []Column
}

// New validates the column shape and returns a Table.
//
// Errors:
//   - ErrColumnLength (wrapped) when any two columns differ in length.
//
// Zero columns and zero rows are both valid shapes.
func New(columns []Column) (*Table, error) {
	t := &Table{Columns: columns}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate re-checks the equal-length invariant. Useful for callers that
// build Columns by hand.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return nil
	}
	n := len(t.Columns[0].Cells)
	for _, c := range t.Columns[1:] {
		if len(c.Cells) != n {
			return fmt.Errorf("%w: column %q has %d cells, want %d",
				ErrColumnLength, c.Name, len(c.Cells), n)
		}
	}
	return nil
}

// RowCount returns the number of rows. Zero for an empty table.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.Columns) }

// Row copies row i into a fresh slice, one cell per column.
func (t *Table) Row(i int) []Cell {
	out := make([]Cell, len(t.Columns))
	for c := range t.Columns {
		out[c] = t.Columns[c].Cells[i]
	}
	return out
}

// Canonical row-key encoding. Each present cell is length-prefixed as
// "<len>:<value>;" and a missing cell is encoded as "\x00;". The length prefix
// makes the encoding injective even when cell values contain delimiter bytes,
// and the NUL marker keeps missing distinct from the empty string.
const keyMissing = "\x00;"

// RowKey returns a canonical string key for row i. Two rows are exact
// duplicates iff their keys are equal. Both the duplicate-row detector and
// the cleaner's dedup step use this encoding so they always agree.
func (t *Table) RowKey(i int) string {
	var b strings.Builder
	for c := range t.Columns {
		cell := t.Columns[c].Cells[i]
		if !cell.Valid {
			b.WriteString(keyMissing)
			continue
		}
		b.WriteString(strconv.Itoa(len(cell.Value)))
		b.WriteByte(':')
		b.WriteString(cell.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// DuplicateRows returns, in row order, the indexes of rows that are exact
// duplicates of an earlier row (first occurrences are not included).
func (t *Table) DuplicateRows() []int {
	n := t.RowCount()
	if n == 0 || t.ColumnCount() == 0 {
		return nil
	}
	seen := make(map[string]struct{}, n)
	var dups []int
	for i := 0; i < n; i++ {
		k := t.RowKey(i)
		if _, ok := seen[k]; ok {
			dups = append(dups, i)
			continue
		}
		seen[k] = struct{}{}
	}
	return dups
}
