package cleaning

import (
	"reflect"
	"testing"

	"inspector/internal/table"
)

func mktab(t *testing.T, cols ...table.Column) *table.Table {
	t.Helper()
	tab, err := table.New(cols)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tab
}

func cell(v any) table.Cell {
	if v == nil {
		return table.Missing()
	}
	return table.String(v.(string))
}

func col(name string, vals ...any) table.Column {
	c := table.Column{Name: name}
	for _, v := range vals {
		c.Cells = append(c.Cells, cell(v))
	}
	return c
}

//
// Apply
//

// TestApplyTrimsAndNormalizes verifies the two core steps: whitespace
// trimming of names and cells, and marker normalization to the missing
// marker (case-insensitive).
func TestApplyTrimsAndNormalizes(t *testing.T) {
	t.Parallel()

	in := mktab(t,
		col(" city ", "  Oslo  ", "N/A", "null", "-", "Bergen"),
	)
	out, sum := Apply(in, Options{})

	if out.Columns[0].Name != "city" {
		t.Fatalf("column name = %q, want %q", out.Columns[0].Name, "city")
	}

	want := []table.Cell{
		table.String("Oslo"),
		table.Missing(),
		table.Missing(),
		table.Missing(),
		table.String("Bergen"),
	}
	if !reflect.DeepEqual(out.Columns[0].Cells, want) {
		t.Fatalf("cells = %+v, want %+v", out.Columns[0].Cells, want)
	}

	if sum.CellsTrimmed != 1 {
		t.Fatalf("CellsTrimmed = %d, want 1", sum.CellsTrimmed)
	}
	if sum.CellsNormalized != 3 {
		t.Fatalf("CellsNormalized = %d, want 3", sum.CellsNormalized)
	}
	if sum.RowsDropped != 0 {
		t.Fatalf("RowsDropped = %d, want 0", sum.RowsDropped)
	}
}

// TestApplyEmptyStringBecomesMissing verifies that a present-but-empty cell
// normalizes away under the default markers.
func TestApplyEmptyStringBecomesMissing(t *testing.T) {
	t.Parallel()

	out, sum := Apply(mktab(t, col("a", "", "  ")), Options{})
	for i, c := range out.Columns[0].Cells {
		if c.Valid {
			t.Fatalf("cell %d still valid: %+v", i, c)
		}
	}
	if sum.CellsNormalized != 2 {
		t.Fatalf("CellsNormalized = %d, want 2", sum.CellsNormalized)
	}
}

// TestApplyCustomMarkers verifies the override: only the configured markers
// normalize, the defaults stop applying.
func TestApplyCustomMarkers(t *testing.T) {
	t.Parallel()

	out, _ := Apply(
		mktab(t, col("a", "UNKNOWN", "na")),
		Options{EmptyMarkers: []string{"unknown"}},
	)
	cells := out.Columns[0].Cells
	if cells[0].Valid {
		t.Fatalf("custom marker not normalized: %+v", cells[0])
	}
	if !cells[1].Valid || cells[1].Value != "na" {
		t.Fatalf("default marker must not apply with an override: %+v", cells[1])
	}
}

// TestApplyRemoveDuplicates verifies keep-first dedup with survivor order
// preserved, and that dedup runs after normalization so rows that become
// equal through cleaning also collapse.
func TestApplyRemoveDuplicates(t *testing.T) {
	t.Parallel()

	in := mktab(t,
		col("a", "1", "2", " 1 ", "3"),
		col("b", "x", "y", "x", "z"),
	)
	out, sum := Apply(in, Options{RemoveDuplicates: true})

	if sum.RowsDropped != 1 {
		t.Fatalf("RowsDropped = %d, want 1", sum.RowsDropped)
	}
	wantA := []table.Cell{table.String("1"), table.String("2"), table.String("3")}
	if !reflect.DeepEqual(out.Columns[0].Cells, wantA) {
		t.Fatalf("column a = %+v, want %+v", out.Columns[0].Cells, wantA)
	}
	if out.RowCount() != 3 {
		t.Fatalf("RowCount = %d, want 3", out.RowCount())
	}
}

// TestApplyDoesNotMutateInput verifies the input table survives a clean
// byte for byte.
func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	mk := func() *table.Table {
		return mktab(t,
			col(" a ", " x ", "na", "x", "x"),
		)
	}
	in := mk()
	Apply(in, Options{RemoveDuplicates: true})
	if !reflect.DeepEqual(in, mk()) {
		t.Fatal("Apply mutated its input")
	}
}

// TestApplyIdempotent verifies that cleaning a cleaned table is a no-op.
func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	in := mktab(t,
		col(" name ", "  Ana ", "N/A", "Bo", "Bo", nil),
		col("note", "x", "-", "y", "y", ""),
	)
	opts := Options{RemoveDuplicates: true}

	once, _ := Apply(in, opts)
	twice, sum := Apply(once, opts)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second clean changed the table:\n%+v\nvs\n%+v", once, twice)
	}
	if sum != (Summary{}) {
		t.Fatalf("second clean reported work: %+v", sum)
	}
}

// TestApplyEmptyTable verifies the degenerate shapes pass through.
func TestApplyEmptyTable(t *testing.T) {
	t.Parallel()

	out, sum := Apply(mktab(t), Options{RemoveDuplicates: true})
	if out.ColumnCount() != 0 || out.RowCount() != 0 {
		t.Fatalf("out = %+v", out)
	}
	if sum != (Summary{}) {
		t.Fatalf("sum = %+v, want zero", sum)
	}
}
