package vercompat

import "github.com/datapipe-dev/vercompat/vercompat/version"

// Result is the outcome of evaluating one declared/actual version pair.
type Result struct {
	// Name is the consumer label from a pin file entry (empty for direct checks).
	Name            string
	Declared        version.Version
	Actual          version.Version
	Compatible      bool
	Regime          Regime
	CompatibleRange string
}

// Verdict renders the compatibility decision for human-facing output.
func (r Result) Verdict() string {
	if r.Compatible {
		return "compatible"
	}
	return "incompatible"
}

// Report is an ordered collection of evaluation results.
type Report []Result

// HasIncompatibilities indicates whether any result in the report failed the
// compatibility check.
func (r Report) HasIncompatibilities() bool {
	for _, result := range r {
		if !result.Compatible {
			return true
		}
	}
	return false
}
