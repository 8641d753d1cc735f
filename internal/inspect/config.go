package inspect

// Config carries every tunable the engine uses. It is an immutable value
// passed explicitly into each component call; there is no package-level
// mutable state, so two inspections with the same Config and table always
// produce the same report.
type Config struct {
	// NumericThreshold is the minimum fraction of non-missing values that
	// must parse as numbers (after symbol stripping) for a column to be
	// classified numeric.
	NumericThreshold float64

	// DateThreshold is the minimum fraction of non-missing values that must
	// parse under the accepted date layouts (union across layouts) for a
	// column to be classified date. The same threshold decides whether one
	// single layout is enough to call the column consistent.
	DateThreshold float64

	// MixedMinorityThreshold is the minimum per-category share for a
	// category to count as "present" when deciding mixed classification,
	// and for a date layout to be reported as a competing format.
	MixedMinorityThreshold float64

	// HighMissingnessThreshold triggers the high_missingness issue when a
	// column's missing fraction reaches it.
	HighMissingnessThreshold float64

	// NumericAsTextThreshold is the minimum fraction of non-missing values
	// that must look numeric-with-symbols for the numeric_as_text issue on
	// a text or mixed column.
	NumericAsTextThreshold float64

	// EmptyMarkers are trimmed, lowercased cell values treated as missing by
	// the cleaner's normalize step.
	EmptyMarkers []string

	// DateLayouts is the ordered list of accepted date layouts. Order is a
	// tie-breaker when several layouts parse the same rows.
	DateLayouts []string

	// Truthy and Falsy are the accepted boolean tokens (lowercased).
	Truthy []string
	Falsy  []string

	// EmailSampleSize caps how many offending values an invalid_email issue
	// carries.
	EmailSampleSize int

	// PKMaxMissingPct and PKMinCardinality gate the pk_candidate issue:
	// near-complete, near-unique columns are primary key candidates.
	PKMaxMissingPct  float64
	PKMinCardinality float64
}

// DefaultConfig returns the fixed constants from the engine contract.
// Callers that need different thresholds copy and adjust the value.
func DefaultConfig() Config {
	return Config{
		NumericThreshold:         0.95,
		DateThreshold:            0.95,
		MixedMinorityThreshold:   0.05,
		HighMissingnessThreshold: 0.30,
		NumericAsTextThreshold:   0.50,

		EmptyMarkers: []string{"", "na", "n/a", "null", "none", "-"},

		DateLayouts: []string{
			"2006-01-02",
			"2006/01/02",
			"02/01/2006",
			"01/02/2006",
			"02.01.2006",
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
		},

		Truthy: []string{"1", "t", "true", "yes", "y"},
		Falsy:  []string{"0", "f", "false", "no", "n"},

		EmailSampleSize: 5,

		PKMaxMissingPct:  0.01,
		PKMinCardinality: 0.98,
	}
}

// IsEmptyMarker reports whether a trimmed cell value is one of the configured
// empty markers (case-insensitive).
func (c Config) IsEmptyMarker(v string) bool {
	v = lowerTrim(v)
	for _, m := range c.EmptyMarkers {
		if v == m {
			return true
		}
	}
	return false
}
