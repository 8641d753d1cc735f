package inspect

import (
	"encoding/json"
	"sort"

	"inspector/internal/table"
)

// Report aggregates the dataset overview, the column profiles, and every
// detected issue for one inspection run. It is assembled once and not
// modified afterwards.
type Report struct {
	RowCount          int
	ColumnCount       int
	TotalMissingCells int
	DuplicateRowCount int

	// Columns is sorted by descending missing fraction; ties keep the
	// input column order (stable sort).
	Columns []Profile

	// Issues preserves detector execution order, then each detector's own
	// severity ordering.
	Issues []Issue
}

// Build runs the whole engine over a table: profiles every column, runs the
// detectors in their fixed order, and assembles the report.
//
// Build is a pure function: repeated calls on the same table and config
// yield structurally identical reports, and the input table is never
// mutated. The only error is a structurally invalid table (unequal column
// lengths); malformed data never errors.
func Build(t *table.Table, cfg Config) (*Report, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	profiles := ProfileColumns(t, cfg)

	var issues []Issue
	for _, d := range Detectors() {
		issues = append(issues, d(t, profiles, cfg)...)
	}

	r := &Report{
		RowCount:          t.RowCount(),
		ColumnCount:       t.ColumnCount(),
		DuplicateRowCount: len(t.DuplicateRows()),
		Issues:            issues,
	}
	for _, p := range profiles {
		r.TotalMissingCells += p.MissingCount
	}

	r.Columns = append(r.Columns, profiles...)
	sort.SliceStable(r.Columns, func(i, j int) bool {
		return r.Columns[i].MissingPct > r.Columns[j].MissingPct
	})

	return r, nil
}

// ----------------------------------------------------------------------------
// External JSON format
// ----------------------------------------------------------------------------

// Wire shapes with the stable field names of the external report format.
// Absent min/max and dataset-level columns serialize as JSON null.

type columnJSON struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	MissingPct  float64 `json:"missing_pct"`
	UniqueCount int     `json:"unique_count"`
	Cardinality float64 `json:"cardinality"`
	Min         *string `json:"min"`
	Max         *string `json:"max"`
}

type issueJSON struct {
	Kind        string   `json:"kind"`
	Column      *string  `json:"column"`
	Metric      float64  `json:"metric"`
	Explanation string   `json:"explanation"`
	Suggestion  string   `json:"suggestion"`
	Samples     []string `json:"samples,omitempty"`
}

type reportJSON struct {
	RowCount          int          `json:"row_count"`
	ColumnCount       int          `json:"column_count"`
	TotalMissingCells int          `json:"total_missing_cells"`
	DuplicateRowCount int          `json:"duplicate_row_count"`
	Columns           []columnJSON `json:"columns"`
	Issues            []issueJSON  `json:"issues"`
}

// MarshalJSON renders the external report format.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		RowCount:          r.RowCount,
		ColumnCount:       r.ColumnCount,
		TotalMissingCells: r.TotalMissingCells,
		DuplicateRowCount: r.DuplicateRowCount,
		Columns:           make([]columnJSON, 0, len(r.Columns)),
		Issues:            make([]issueJSON, 0, len(r.Issues)),
	}

	for _, p := range r.Columns {
		out.Columns = append(out.Columns, columnJSON{
			Name:        p.Name,
			Type:        string(p.Type),
			MissingPct:  p.MissingPct,
			UniqueCount: p.UniqueCount,
			Cardinality: p.Cardinality,
			Min:         p.Min,
			Max:         p.Max,
		})
	}

	for _, iss := range r.Issues {
		j := issueJSON{
			Kind:        string(iss.Kind),
			Metric:      iss.Metric,
			Explanation: iss.Explanation,
			Suggestion:  iss.Suggestion,
			Samples:     iss.Samples,
		}
		if iss.Column != "" {
			col := iss.Column
			j.Column = &col
		}
		out.Issues = append(out.Issues, j)
	}

	return json.Marshal(out)
}
