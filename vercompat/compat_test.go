package vercompat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapipe-dev/vercompat/vercompat/version"
)

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		declared   string
		actual     string
		compatible bool
	}{
		// 0.x regime: minor must match exactly, patch is free
		{name: "0.x same minor differing patch", declared: "0.3.0", actual: "0.3.9", compatible: true},
		{name: "0.x exact match", declared: "0.7.0", actual: "0.7.0", compatible: true},
		{name: "0.x minor downgrade", declared: "0.7.0", actual: "0.6.1", compatible: false},
		{name: "0.x minor upgrade is still incompatible", declared: "0.6.1", actual: "0.7.0", compatible: false},
		{name: "0.x against 1.x", declared: "0.7.0", actual: "1.7.0", compatible: false},
		{name: "0.x against same-minor 1.x", declared: "0.7.0", actual: "1.0.0", compatible: false},
		// 1.x regime: only major must match
		{name: "stable same major differing minor", declared: "1.2.3", actual: "1.9.0", compatible: true},
		{name: "stable minor downgrade", declared: "1.9.0", actual: "1.2.3", compatible: true},
		{name: "stable exact match", declared: "2.0.0", actual: "2.0.0", compatible: true},
		{name: "stable major bump", declared: "1.9.9", actual: "2.0.0", compatible: false},
		{name: "stable major downgrade", declared: "2.0.0", actual: "1.9.9", compatible: false},
		{name: "stable against 0.x", declared: "1.2.3", actual: "0.2.3", compatible: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			declared := version.MustParse(test.declared)
			actual := version.MustParse(test.actual)

			assert.Equal(t, test.compatible, IsCompatible(declared, actual))
			// the predicate depends only on major/minor equality, so swapping
			// the arguments must yield the same verdict
			assert.Equal(t, test.compatible, IsCompatible(actual, declared))
		})
	}
}

func TestIsCompatibleReflexive(t *testing.T) {
	for _, raw := range []string{"0.0.0", "0.0.9", "0.7.0", "0.12.3", "1.0.0", "1.2.3", "2.0.1", "14.9.9"} {
		t.Run(raw, func(t *testing.T) {
			v := version.MustParse(raw)
			assert.True(t, IsCompatible(v, v))
		})
	}
}

func TestCompatibleRange(t *testing.T) {
	tests := []struct {
		declared string
		expected string
	}{
		{declared: "0.7.0", expected: ">= 0.7.0, < 0.8.0"},
		{declared: "0.7.9", expected: ">= 0.7.0, < 0.8.0"},
		{declared: "0.0.1", expected: ">= 0.0.0, < 0.1.0"},
		{declared: "1.2.3", expected: ">= 1.0.0, < 2.0.0"},
		{declared: "14.0.2", expected: ">= 14.0.0, < 15.0.0"},
	}

	for _, test := range tests {
		t.Run(test.declared, func(t *testing.T) {
			constraints := CompatibleRange(version.MustParse(test.declared))
			assert.Equal(t, test.expected, constraints.String())
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		actual   string
		expected Result
	}{
		{
			name:     "0.x minor mismatch",
			declared: "0.7.0",
			actual:   "0.6.1",
			expected: Result{
				Declared:        version.MustParse("0.7.0"),
				Actual:          version.MustParse("0.6.1"),
				Compatible:      false,
				Regime:          ZeroRegime,
				CompatibleRange: ">= 0.7.0, < 0.8.0",
			},
		},
		{
			name:     "stable same major",
			declared: "1.2.3",
			actual:   "1.9.0",
			expected: Result{
				Declared:        version.MustParse("1.2.3"),
				Actual:          version.MustParse("1.9.0"),
				Compatible:      true,
				Regime:          StableRegime,
				CompatibleRange: ">= 1.0.0, < 2.0.0",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := Evaluate(version.MustParse(test.declared), version.MustParse(test.actual))
			assert.Equal(t, test.expected, actual)
		})
	}
}

// the boolean fast path and the constraint-based evaluation must never disagree
func TestEvaluateAgreesWithIsCompatible(t *testing.T) {
	samples := []string{"0.0.0", "0.0.7", "0.3.0", "0.3.9", "0.6.1", "0.7.0", "1.0.0", "1.2.3", "1.9.0", "2.0.0", "2.5.1"}

	for _, declaredRaw := range samples {
		for _, actualRaw := range samples {
			declared := version.MustParse(declaredRaw)
			actual := version.MustParse(actualRaw)

			result := Evaluate(declared, actual)
			require.Equal(t, IsCompatible(declared, actual), result.Compatible,
				"declared=%s actual=%s", declaredRaw, actualRaw)
		}
	}
}

func TestRegimeOf(t *testing.T) {
	assert.Equal(t, ZeroRegime, RegimeOf(version.MustParse("0.9.9")))
	assert.Equal(t, StableRegime, RegimeOf(version.MustParse("1.0.0")))
	assert.Equal(t, StableRegime, RegimeOf(version.MustParse("7.2.1")))
}

func TestRegimeString(t *testing.T) {
	assert.Equal(t, "0.x", ZeroRegime.String())
	assert.Equal(t, "1.x", StableRegime.String())
	assert.Equal(t, "UnknownRegime", UnknownRegime.String())
	assert.Equal(t, "UnknownRegime", Regime(99).String())
}

func TestResultVerdict(t *testing.T) {
	assert.Equal(t, "compatible", Result{Compatible: true}.Verdict())
	assert.Equal(t, "incompatible", Result{}.Verdict())
}

func TestReportHasIncompatibilities(t *testing.T) {
	assert.False(t, Report{}.HasIncompatibilities())
	assert.False(t, Report{{Compatible: true}}.HasIncompatibilities())
	assert.True(t, Report{{Compatible: true}, {Compatible: false}}.HasIncompatibilities())
}
