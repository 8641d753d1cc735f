package inspect

import (
	"strings"
	"time"

	"inspector/internal/table"
)

// Profile holds the per-column statistics computed in one inspection pass.
type Profile struct {
	Name string

	// Type and its optional payload, copied from Classify.
	Type      Type
	EmailLike bool
	Competing []Type

	MissingCount int
	MissingPct   float64

	// UniqueCount counts distinct non-missing values. Numeric columns
	// compare by parsed value after symbol stripping, so "$5" and "5"
	// count as one value. This is a deliberate policy choice: the column
	// is numeric, so equality follows the numbers, not their rendering.
	UniqueCount int

	// Cardinality is UniqueCount / row count (0 for an empty table).
	Cardinality float64

	// Min and Max are present only for orderable (numeric, date) columns
	// and only when at least one value parsed. Values that fail to parse
	// are ignored rather than erroring.
	Min *string
	Max *string
}

// ProfileColumns computes one Profile per column, in input column order.
// A cell is missing when it carries the missing marker or is an empty string
// after trimming. missing_pct is 0, not NaN, for a zero-row table.
func ProfileColumns(t *table.Table, cfg Config) []Profile {
	rows := t.RowCount()
	out := make([]Profile, 0, len(t.Columns))

	for _, col := range t.Columns {
		cls := Classify(col.Name, col.Cells, cfg)
		p := Profile{
			Name:      col.Name,
			Type:      cls.Type,
			EmailLike: cls.EmailLike,
			Competing: cls.Competing,
		}

		var values []string
		for _, c := range col.Cells {
			v := strings.TrimSpace(c.Value)
			if !c.Valid || v == "" {
				p.MissingCount++
				continue
			}
			values = append(values, v)
		}
		if rows > 0 {
			p.MissingPct = float64(p.MissingCount) / float64(rows)
		}

		p.UniqueCount = countUnique(values, cls.Type)
		if rows > 0 {
			p.Cardinality = float64(p.UniqueCount) / float64(rows)
		}

		p.Min, p.Max = columnRange(values, cls.Type, cfg)
		out = append(out, p)
	}
	return out
}

// countUnique counts distinct values; numeric columns key on the parsed
// number when the value parses, the raw value otherwise.
func countUnique(values []string, typ Type) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := v
		if typ == TypeNumeric {
			if f, _, ok := parseNumberLoose(v); ok {
				key = formatNumber(f)
			}
		}
		seen[key] = struct{}{}
	}
	return len(seen)
}

// columnRange computes min/max for orderable columns over the values that
// parse, and reports absence (nil, nil) for every other case.
func columnRange(values []string, typ Type, cfg Config) (*string, *string) {
	switch typ {
	case TypeNumeric:
		var lo, hi float64
		found := false
		for _, v := range values {
			f, _, ok := parseNumberLoose(v)
			if !ok {
				continue
			}
			if !found || f < lo {
				lo = f
			}
			if !found || f > hi {
				hi = f
			}
			found = true
		}
		if !found {
			return nil, nil
		}
		ls, hs := formatNumber(lo), formatNumber(hi)
		return &ls, &hs

	case TypeDate:
		var lo, hi time.Time
		var loLay, hiLay string
		found := false
		for _, v := range values {
			ts, lay, ok := parseDateLoose(v, cfg.DateLayouts)
			if !ok {
				continue
			}
			if !found || ts.Before(lo) {
				lo, loLay = ts, lay
			}
			if !found || ts.After(hi) {
				hi, hiLay = ts, lay
			}
			found = true
		}
		if !found {
			return nil, nil
		}
		ls, hs := formatDate(lo, loLay), formatDate(hi, hiLay)
		return &ls, &hs

	default:
		return nil, nil
	}
}

// formatDate renders a parsed date in ISO form; the clock is kept only when
// the source layout carried one.
func formatDate(t time.Time, sourceLayout string) string {
	if strings.Contains(sourceLayout, "15:04") {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02")
}
