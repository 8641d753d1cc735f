// Package cleaning applies the safe, non-destructive cleaning transform:
// trim string cells, normalize empty markers to the missing marker, and
// optionally drop exact duplicate rows.
//
// The transform never mutates its input table, never imputes values, never
// reorders columns, and is idempotent: cleaning a cleaned table changes
// nothing.
package cleaning

import (
	"strings"

	"inspector/internal/inspect"
	"inspector/internal/table"
)

// Options controls the cleaning transform.
type Options struct {
	// RemoveDuplicates drops rows that duplicate an earlier surviving row,
	// keeping the first occurrence and the relative order of kept rows.
	RemoveDuplicates bool

	// EmptyMarkers overrides the values normalized to the missing marker.
	// Nil means the engine defaults ("", "na", "n/a", "null", "none", "-").
	EmptyMarkers []string
}

// Summary reports what the clean actually did, for logging by callers.
type Summary struct {
	CellsTrimmed    int
	CellsNormalized int
	RowsDropped     int
}

// Apply produces a cleaned copy of t. Column names are trimmed along with
// cells. The input is left untouched.
func Apply(t *table.Table, opts Options) (*table.Table, Summary) {
	markers := opts.EmptyMarkers
	if markers == nil {
		markers = inspect.DefaultConfig().EmptyMarkers
	}
	markerSet := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		markerSet[strings.ToLower(m)] = struct{}{}
	}

	var sum Summary

	out := &table.Table{Columns: make([]table.Column, len(t.Columns))}
	for ci, col := range t.Columns {
		cells := make([]table.Cell, len(col.Cells))
		for ri, c := range col.Cells {
			cells[ri] = cleanCell(c, markerSet, &sum)
		}
		out.Columns[ci] = table.Column{
			Name:  strings.TrimSpace(col.Name),
			Cells: cells,
		}
	}

	if opts.RemoveDuplicates {
		out, sum.RowsDropped = dropDuplicateRows(out)
	}
	return out, sum
}

func cleanCell(c table.Cell, markers map[string]struct{}, sum *Summary) table.Cell {
	if !c.Valid {
		return c
	}

	v := strings.TrimSpace(c.Value)
	if v != c.Value {
		sum.CellsTrimmed++
	}
	if _, ok := markers[strings.ToLower(v)]; ok {
		sum.CellsNormalized++
		return table.Missing()
	}
	return table.String(v)
}

// dropDuplicateRows keeps the first occurrence of every row and preserves
// the relative order of survivors.
func dropDuplicateRows(t *table.Table) (*table.Table, int) {
	dups := t.DuplicateRows()
	if len(dups) == 0 {
		return t, 0
	}

	drop := make(map[int]struct{}, len(dups))
	for _, i := range dups {
		drop[i] = struct{}{}
	}

	rows := t.RowCount()
	out := &table.Table{Columns: make([]table.Column, len(t.Columns))}
	for ci, col := range t.Columns {
		kept := make([]table.Cell, 0, rows-len(dups))
		for ri, c := range col.Cells {
			if _, skip := drop[ri]; skip {
				continue
			}
			kept = append(kept, c)
		}
		out.Columns[ci] = table.Column{Name: col.Name, Cells: kept}
	}
	return out, len(dups)
}
