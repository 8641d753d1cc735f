// Package metrics defines the minimal backend interface the inspection cmds
// report through. Keeping the interface tiny means the engine itself never
// depends on any vendor SDK; backends live in subpackages.
package metrics

// Labels are free-form metric dimensions (e.g. {"kind": "invalid_email"}).
type Labels map[string]string

// Backend receives counter increments and histogram observations.
// Implementations must be safe for concurrent use.
type Backend interface {
	IncCounter(name string, delta float64, labels Labels)
	ObserveHistogram(name string, value float64, labels Labels)

	// Close flushes buffered metrics and stops background work.
	Close() error
}

// Nop discards everything. Used when metrics are disabled.
type Nop struct{}

func (Nop) IncCounter(string, float64, Labels)       {}
func (Nop) ObserveHistogram(string, float64, Labels) {}
func (Nop) Close() error                             { return nil }
