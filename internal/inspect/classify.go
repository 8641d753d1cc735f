package inspect

import (
	"sort"
	"strings"

	"inspector/internal/table"
)

// Type is the semantic type tag inferred for a column.
type Type string

const (
	TypeNumeric Type = "numeric"
	TypeText    Type = "text"
	TypeDate    Type = "date"
	TypeBoolean Type = "boolean"
	TypeEmail   Type = "email"
	TypeMixed   Type = "mixed"
)

// Classification is the tagged result of type inference for one column.
// It is a plain value, not a hierarchy: detectors switch on Type and read
// the optional payload fields.
type Classification struct {
	Type Type

	// EmailLike marks the column as a candidate for email validation.
	// It can be true even when Type is not TypeEmail (e.g. a column named
	// "email" that is mostly empty).
	EmailLike bool

	// Competing lists the categories that tipped the column into mixed,
	// ordered by descending share. Empty unless Type == TypeMixed.
	Competing []Type
}

// Classify infers the semantic type of a column. Missing cells are ignored;
// inference is deterministic for identical contents and never fails: a column
// with no usable values is text.
//
// Precedence mirrors the contract: numeric, then date, then boolean, then
// email-like, then mixed/text.
func Classify(name string, cells []table.Cell, cfg Config) Classification {
	values := nonMissingValues(cells)
	out := Classification{Type: TypeText}

	out.EmailLike = looksLikeEmailColumn(name, values)

	if len(values) == 0 {
		return out
	}
	total := float64(len(values))

	numericN := 0
	for _, v := range values {
		if _, _, ok := parseNumberLoose(v); ok {
			numericN++
		}
	}
	if float64(numericN)/total >= cfg.NumericThreshold {
		out.Type = TypeNumeric
		return out
	}

	cov := measureDateCoverage(values, cfg.DateLayouts)
	if cov.unionShare() >= cfg.DateThreshold {
		out.Type = TypeDate
		return out
	}

	if isBooleanValueSet(values, cfg) {
		out.Type = TypeBoolean
		return out
	}

	if out.EmailLike {
		out.Type = TypeEmail
		return out
	}

	if competing := competingCategories(values, cfg); len(competing) >= 2 {
		out.Type = TypeMixed
		out.Competing = competing
	}
	return out
}

// nonMissingValues returns the trimmed values of present cells. An empty
// string counts as missing, matching the profiler's definition.
func nonMissingValues(cells []table.Cell) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if !c.Valid {
			continue
		}
		v := strings.TrimSpace(c.Value)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// isBooleanValueSet reports whether the distinct value set (case-insensitive)
// is a subset of the boolean tokens with at least two distinct tokens present.
func isBooleanValueSet(values []string, cfg Config) bool {
	tokens := make(map[string]struct{}, len(cfg.Truthy)+len(cfg.Falsy))
	for _, t := range cfg.Truthy {
		tokens[t] = struct{}{}
	}
	for _, t := range cfg.Falsy {
		tokens[t] = struct{}{}
	}

	distinct := make(map[string]struct{}, 4)
	for _, v := range values {
		v = strings.ToLower(v)
		if _, ok := tokens[v]; !ok {
			return false
		}
		distinct[v] = struct{}{}
	}
	return len(distinct) >= 2
}

// looksLikeEmailColumn applies the two email heuristics: a telling column
// name, or a majority of values containing '@'.
func looksLikeEmailColumn(name string, values []string) bool {
	n := lowerTrim(name)
	if strings.Contains(n, "email") || strings.HasSuffix(n, "mail") {
		return true
	}
	if len(values) == 0 {
		return false
	}
	withAt := 0
	for _, v := range values {
		if strings.Contains(v, "@") {
			withAt++
		}
	}
	return float64(withAt)/float64(len(values)) > 0.5
}

// competingCategories buckets every value into its most specific category
// (numeric, date, boolean, text) and returns the categories whose share
// reaches the mixed minority threshold, ordered by descending share.
func competingCategories(values []string, cfg Config) []Type {
	counts := map[Type]int{}
	for _, v := range values {
		if _, _, ok := parseNumberLoose(v); ok {
			counts[TypeNumeric]++
			continue
		}
		if _, _, ok := parseDateLoose(v, cfg.DateLayouts); ok {
			counts[TypeDate]++
			continue
		}
		if isBooleanToken(v, cfg) {
			counts[TypeBoolean]++
			continue
		}
		counts[TypeText]++
	}

	total := float64(len(values))
	var out []Type
	for t, n := range counts {
		if float64(n)/total >= cfg.MixedMinorityThreshold {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] > counts[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

func isBooleanToken(v string, cfg Config) bool {
	v = strings.ToLower(v)
	for _, t := range cfg.Truthy {
		if v == t {
			return true
		}
	}
	for _, t := range cfg.Falsy {
		if v == t {
			return true
		}
	}
	return false
}
