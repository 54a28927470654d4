package vercompat

import "github.com/datapipe-dev/vercompat/vercompat/version"

const (
	UnknownRegime Regime = iota
	// ZeroRegime is the pre-stabilization 0.x line: only exact
	// major-and-minor matches are declared compatible.
	ZeroRegime
	// StableRegime is the 1.x-and-beyond line: any same-major version is
	// declared compatible.
	StableRegime
)

// Regime identifies which half of the compatibility policy applies to a
// declared version.
type Regime int

var regimeStr = []string{
	"UnknownRegime",
	"0.x",
	"1.x",
}

var Regimes = []Regime{
	ZeroRegime,
	StableRegime,
}

// RegimeOf returns the policy regime the given declared version falls under.
func RegimeOf(declared version.Version) Regime {
	if declared.Major == 0 {
		return ZeroRegime
	}
	return StableRegime
}

func (r Regime) String() string {
	if int(r) >= len(regimeStr) || r < 0 {
		return regimeStr[0]
	}

	return regimeStr[r]
}
