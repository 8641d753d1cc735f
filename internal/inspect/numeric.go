package inspect

import (
	"strconv"
	"strings"
)

// numericHints records which tolerated decorations were seen on a value that
// parsed as a number. The numeric_as_text detector reports them so the
// suggestion can name what has to be stripped.
type numericHints struct {
	Currency bool
	Percent  bool
	EUFormat bool
}

func (h numericHints) any() bool { return h.Currency || h.Percent || h.EUFormat }

func (h *numericHints) merge(o numericHints) {
	h.Currency = h.Currency || o.Currency
	h.Percent = h.Percent || o.Percent
	h.EUFormat = h.EUFormat || o.EUFormat
}

func (h numericHints) labels() []string {
	var out []string
	if h.Currency {
		out = append(out, "currency symbols")
	}
	if h.Percent {
		out = append(out, "percent signs")
	}
	if h.EUFormat {
		out = append(out, "EU number formatting")
	}
	return out
}

// currencySymbols accepted as a leading or trailing decoration.
var currencySymbols = []string{"$", "€", "£"}

// parseNumberLoose parses a value as a real number, tolerating:
//   - a leading or trailing currency symbol ($ € £)
//   - a trailing percent sign
//   - EU-style separators: dot for thousands, comma for decimals
//
// Once stripped of decorations the remainder must be a valid real number,
// otherwise ok=false. The hints describe which decorations were present on a
// successful parse; a plain number returns zero hints.
func parseNumberLoose(s string) (v float64, hints numericHints, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, numericHints{}, false
	}

	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimSpace(strings.TrimPrefix(s, sym))
			hints.Currency = true
			break
		}
		if strings.HasSuffix(s, sym) {
			s = strings.TrimSpace(strings.TrimSuffix(s, sym))
			hints.Currency = true
			break
		}
	}

	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		hints.Percent = true
	}

	if s == "" {
		return 0, numericHints{}, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, hints, true
	}

	// EU separators: reinterpret "1.234,56" / "12,5" as "1234.56" / "12.5".
	// Only attempted when a comma is present; a dot-only value that failed
	// ParseFloat above is simply not a number.
	if eu, isEU := normalizeEUNumber(s); isEU {
		if f, err := strconv.ParseFloat(eu, 64); err == nil {
			hints.EUFormat = true
			return f, hints, true
		}
	}

	return 0, numericHints{}, false
}

// normalizeEUNumber rewrites a comma-decimal value into Go float syntax.
// "1.234,56" -> "1234.56"; "12,5" -> "12.5". Returns isEU=false when the
// shape cannot be an EU-formatted number (no comma, or several commas).
func normalizeEUNumber(s string) (string, bool) {
	if strings.Count(s, ",") != 1 {
		return "", false
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	return s, true
}

// formatNumber renders a parsed numeric value the shortest way that
// round-trips, for min/max in profiles and for numeric uniqueness keys
// ("$5" and "5" share the key "5").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
