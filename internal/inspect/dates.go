package inspect

import (
	"strings"
	"time"
)

// parseDateLoose tries each accepted layout in order and returns the parsed
// time plus the first layout that matched.
func parseDateLoose(s string, layouts []string) (time.Time, string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, "", false
	}
	for _, lay := range layouts {
		if t, err := time.Parse(lay, s); err == nil {
			return t, lay, true
		}
	}
	return time.Time{}, "", false
}

// dateCoverage holds per-layout parse statistics for one column.
//
// Covered[lay] counts values that parse under lay alone; a single value can
// contribute to several layouts (e.g. "01/06/2024" parses under both slash
// orders). Union counts values parsed by at least one layout and is the basis
// for date classification; Covered drives consistency detection.
type dateCoverage struct {
	Layouts []string
	Covered map[string]int
	Union   int
	Total   int // non-missing values examined
}

// measureDateCoverage scans the non-missing values of a column.
func measureDateCoverage(values []string, layouts []string) dateCoverage {
	cov := dateCoverage{
		Layouts: layouts,
		Covered: make(map[string]int, len(layouts)),
	}
	for _, v := range values {
		cov.Total++
		hit := false
		for _, lay := range layouts {
			if _, err := time.Parse(lay, v); err == nil {
				cov.Covered[lay]++
				hit = true
			}
		}
		if hit {
			cov.Union++
		}
	}
	return cov
}

// unionShare is the fraction of values parseable under at least one layout.
func (c dateCoverage) unionShare() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Union) / float64(c.Total)
}

// bestLayout returns the layout with the highest single-layout coverage and
// its share. Config order breaks ties.
func (c dateCoverage) bestLayout() (string, float64) {
	best, bestN := "", 0
	for _, lay := range c.Layouts {
		if n := c.Covered[lay]; n > bestN {
			best, bestN = lay, n
		}
	}
	if c.Total == 0 {
		return best, 0
	}
	return best, float64(bestN) / float64(c.Total)
}

// competingLayouts returns a minimal layout set that together reaches the
// observed union, greedily picking the layout that covers the most still
// uncovered values (config order breaks ties). This is what the
// date_inconsistency issue reports: the formats a reader would actually need
// to parse the column.
func (c dateCoverage) competingLayouts(values []string) []string {
	if c.Union == 0 {
		return nil
	}

	remaining := make(map[int]struct{}, len(values))
	parsedBy := make(map[string][]int, len(c.Layouts))
	for i, v := range values {
		hit := false
		for _, lay := range c.Layouts {
			if _, err := time.Parse(lay, v); err == nil {
				parsedBy[lay] = append(parsedBy[lay], i)
				hit = true
			}
		}
		if hit {
			remaining[i] = struct{}{}
		}
	}

	var out []string
	for len(remaining) > 0 {
		best, bestGain := "", 0
		for _, lay := range c.Layouts {
			gain := 0
			for _, i := range parsedBy[lay] {
				if _, ok := remaining[i]; ok {
					gain++
				}
			}
			if gain > bestGain {
				best, bestGain = lay, gain
			}
		}
		if bestGain == 0 {
			break
		}
		out = append(out, best)
		for _, i := range parsedBy[best] {
			delete(remaining, i)
		}
	}
	return out
}
