package vercompat

import (
	"fmt"

	goVersion "github.com/hashicorp/go-version"

	"github.com/datapipe-dev/vercompat/vercompat/version"
)

// IsCompatible decides whether a consumer built against the declared version
// may safely use the actual version, per the datapipe versioning policy:
//
//   - declared 0.x: compatible iff actual is 0.x with the same minor (patch
//     may differ freely; any minor difference, including an upgrade, is
//     incompatible)
//   - declared >= 1.x: compatible iff actual has the same major
//
// The function is pure and total over parsed versions; no argument ordering
// is assumed.
func IsCompatible(declared, actual version.Version) bool {
	if declared.Major == 0 {
		return actual.Major == 0 && actual.Minor == declared.Minor
	}
	return actual.Major == declared.Major
}

// CompatibleRange expresses the set of versions compatible with the declared
// version as a half-open semver constraint.
func CompatibleRange(declared version.Version) goVersion.Constraints {
	var lower, upper string
	if declared.Major == 0 {
		lower = fmt.Sprintf("0.%d.0", declared.Minor)
		upper = fmt.Sprintf("0.%d.0", declared.Minor+1)
	} else {
		lower = fmt.Sprintf("%d.0.0", declared.Major)
		upper = fmt.Sprintf("%d.0.0", declared.Major+1)
	}

	// the inputs are formatted integers, so constraint construction cannot fail
	return goVersion.MustConstraints(goVersion.NewConstraint(fmt.Sprintf(">= %s, < %s", lower, upper)))
}

// Evaluate checks the actual version against the range compatible with the
// declared version and reports the verdict along with the regime that applied.
func Evaluate(declared, actual version.Version) Result {
	constraints := CompatibleRange(declared)
	actualObj := goVersion.Must(goVersion.NewVersion(fmt.Sprintf("%d.%d.%d", actual.Major, actual.Minor, actual.Patch)))

	return Result{
		Declared:        declared,
		Actual:          actual,
		Compatible:      constraints.Check(actualObj),
		Regime:          RegimeOf(declared),
		CompatibleRange: constraints.String(),
	}
}
