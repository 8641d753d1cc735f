package inspect

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"inspector/internal/table"
)

// IssueKind identifies a detected data-quality problem.
type IssueKind string

const (
	KindPKCandidate       IssueKind = "pk_candidate"
	KindDuplicateRows     IssueKind = "duplicate_rows"
	KindHighMissingness   IssueKind = "high_missingness"
	KindMixedType         IssueKind = "mixed_type"
	KindInvalidEmail      IssueKind = "invalid_email"
	KindDateInconsistency IssueKind = "date_inconsistency"
	KindNumericAsText     IssueKind = "numeric_as_text"
)

// Issue is one detected problem, paired with a human explanation and a
// remediation suggestion. Column is empty for dataset-level issues.
type Issue struct {
	Kind        IssueKind
	Column      string
	Metric      float64
	Explanation string
	Suggestion  string

	// Samples carries up to a handful of offending values (invalid_email).
	Samples []string
}

// Detector is a pure function over the raw table and the column profiles.
// Detectors never fail: a table with nothing to evaluate (zero rows,
// all-missing columns) produces no issues rather than an error.
type Detector func(t *table.Table, profiles []Profile, cfg Config) []Issue

// Detectors returns the fixed, ordered detector list. The report builder
// runs them in this order and concatenates their output.
func Detectors() []Detector {
	return []Detector{
		detectPKCandidates,
		detectDuplicateRows,
		detectHighMissingness,
		detectMixedTypes,
		detectInvalidEmails,
		detectDateInconsistency,
		detectNumericAsText,
	}
}

// detectPKCandidates flags near-complete, near-unique columns as primary key
// candidates. Informational: it points at a dedupe key, it does not demand
// action.
func detectPKCandidates(t *table.Table, profiles []Profile, cfg Config) []Issue {
	var cands []string
	for _, p := range profiles {
		if p.MissingPct <= cfg.PKMaxMissingPct && p.Cardinality >= cfg.PKMinCardinality && p.UniqueCount > 1 {
			cands = append(cands, p.Name)
		}
	}
	if len(cands) == 0 {
		return nil
	}
	return []Issue{{
		Kind:   KindPKCandidate,
		Metric: float64(len(cands)),
		Explanation: fmt.Sprintf("almost-unique columns with few missing values: %s",
			strings.Join(cands, ", ")),
		Suggestion: "use one as a primary key, or combine several columns if no single one is unique",
	}}
}

// detectDuplicateRows emits one dataset-level issue when any row is an exact
// duplicate of an earlier row (missing-equals-missing).
func detectDuplicateRows(t *table.Table, profiles []Profile, cfg Config) []Issue {
	dups := t.DuplicateRows()
	if len(dups) == 0 {
		return nil
	}
	rows := t.RowCount()
	return []Issue{{
		Kind:   KindDuplicateRows,
		Metric: float64(len(dups)),
		Explanation: fmt.Sprintf("%d rows are exact duplicates (%.1f%% of rows)",
			len(dups), 100*float64(len(dups))/float64(rows)),
		Suggestion: "remove duplicates or verify the repeats are intentional",
	}}
}

// detectHighMissingness emits one issue per column whose missing fraction
// reaches the threshold, ordered by descending missing fraction.
func detectHighMissingness(t *table.Table, profiles []Profile, cfg Config) []Issue {
	var out []Issue
	for _, p := range profiles {
		if p.MissingPct < cfg.HighMissingnessThreshold {
			continue
		}
		out = append(out, Issue{
			Kind:   KindHighMissingness,
			Column: p.Name,
			Metric: p.MissingPct,
			Explanation: fmt.Sprintf("column %q is missing %.1f%% of its values",
				p.Name, 100*p.MissingPct),
			Suggestion: "check the collection process; decide whether to impute, drop, or treat as optional",
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Metric > out[j].Metric })
	return out
}

// detectMixedTypes emits one issue per mixed column, naming the competing
// categories found.
func detectMixedTypes(t *table.Table, profiles []Profile, cfg Config) []Issue {
	var out []Issue
	for _, p := range profiles {
		if p.Type != TypeMixed {
			continue
		}
		names := make([]string, 0, len(p.Competing))
		for _, c := range p.Competing {
			names = append(names, string(c))
		}
		out = append(out, Issue{
			Kind:   KindMixedType,
			Column: p.Name,
			Metric: float64(len(p.Competing)),
			Explanation: fmt.Sprintf("column %q mixes %s values",
				p.Name, strings.Join(names, " and ")),
			Suggestion: "standardize the column to a single format and cast it; mixed columns break pipelines",
		})
	}
	return out
}

// reEmail is the practical email shape: local-part@domain.tld, no embedded
// whitespace, at least one dot in the domain. Not an RFC 5322 parser on
// purpose; typical business addresses are the target.
var reEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// detectInvalidEmails validates every non-missing value of each email-like
// column and reports the failures with a small sample, ordered by descending
// failure count.
func detectInvalidEmails(t *table.Table, profiles []Profile, cfg Config) []Issue {
	var out []Issue
	for i, p := range profiles {
		if !p.EmailLike {
			continue
		}
		values := nonMissingValues(t.Columns[i].Cells)
		if len(values) == 0 {
			continue
		}

		invalid := 0
		var sample []string
		for _, v := range values {
			if reEmail.MatchString(v) {
				continue
			}
			invalid++
			if len(sample) < cfg.EmailSampleSize {
				sample = append(sample, v)
			}
		}
		if invalid == 0 {
			continue
		}

		out = append(out, Issue{
			Kind:   KindInvalidEmail,
			Column: p.Name,
			Metric: float64(invalid),
			Explanation: fmt.Sprintf("column %q holds %d invalid email addresses (%.1f%% of values)",
				p.Name, invalid, 100*float64(invalid)/float64(len(values))),
			Suggestion: "trim whitespace and validate formatting upstream; consider rejecting invalid addresses at ingestion",
			Samples:    sample,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Metric > out[j].Metric })
	return out
}

// detectDateInconsistency flags date columns whose rows do not share one
// consistent layout: no single accepted layout parses the threshold fraction
// of values even though the layouts together do.
func detectDateInconsistency(t *table.Table, profiles []Profile, cfg Config) []Issue {
	var out []Issue
	for i, p := range profiles {
		if p.Type != TypeDate {
			continue
		}
		values := nonMissingValues(t.Columns[i].Cells)
		if len(values) == 0 {
			continue
		}

		cov := measureDateCoverage(values, cfg.DateLayouts)
		if _, share := cov.bestLayout(); share >= cfg.DateThreshold {
			continue
		}

		formats := cov.competingLayouts(values)
		if len(formats) < 2 {
			continue
		}
		out = append(out, Issue{
			Kind:   KindDateInconsistency,
			Column: p.Name,
			Metric: float64(len(formats)),
			Explanation: fmt.Sprintf("column %q needs %d date formats to parse: %s",
				p.Name, len(formats), strings.Join(formats, ", ")),
			Suggestion: "standardize dates to ISO 8601 (2006-01-02); avoid mixing regional orders",
		})
	}
	return out
}

// detectNumericAsText flags text and mixed columns where at least the
// configured fraction of values parse as numbers once currency symbols,
// percent signs, or EU separators are stripped. The explanation names the
// decorations that were observed so the fix is obvious.
func detectNumericAsText(t *table.Table, profiles []Profile, cfg Config) []Issue {
	var out []Issue
	for i, p := range profiles {
		if p.Type != TypeText && p.Type != TypeMixed {
			continue
		}
		values := nonMissingValues(t.Columns[i].Cells)
		if len(values) == 0 {
			continue
		}

		parsed := 0
		var hints numericHints
		for _, v := range values {
			_, h, ok := parseNumberLoose(v)
			if !ok {
				continue
			}
			parsed++
			hints.merge(h)
		}

		share := float64(parsed) / float64(len(values))
		if share < cfg.NumericAsTextThreshold {
			continue
		}

		observed := "plain numbers"
		if hints.any() {
			observed = strings.Join(hints.labels(), ", ")
		}
		out = append(out, Issue{
			Kind:   KindNumericAsText,
			Column: p.Name,
			Metric: share,
			Explanation: fmt.Sprintf("column %q stores numbers as text (%.1f%% parse after cleaning; observed %s)",
				p.Name, 100*share, observed),
			Suggestion: "strip symbols and separators, then cast the column to a numeric type",
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Metric > out[j].Metric })
	return out
}
