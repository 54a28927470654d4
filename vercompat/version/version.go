package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an immutable MAJOR.MINOR.PATCH triple. The zero value is the
// (valid) version 0.0.0.
type Version struct {
	Major int
	Minor int
	Patch int
	raw   string
}

// Parse decomposes the given text into a Version. The only accepted shape is
// a dotted triple of base-10 non-negative integers (e.g. "0.7.0"). Leading
// zeros are tolerated; signs, whitespace, prerelease/build suffixes, and a
// leading "v" are not. Any non-conforming input yields a *MalformedVersionError.
func Parse(text string) (Version, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return Version{}, newMalformedVersionError(text, fmt.Sprintf("expected 3 dot-separated components, found %d", len(parts)))
	}

	var fields [3]int
	for idx, part := range parts {
		if !isDecimal(part) {
			return Version{}, newMalformedVersionError(text, fmt.Sprintf("component %q is not a non-negative integer", part))
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, newMalformedVersionError(text, err.Error())
		}
		fields[idx] = value
	}

	return Version{
		Major: fields[0],
		Minor: fields[1],
		Patch: fields[2],
		raw:   text,
	}, nil
}

// MustParse is meant for testing only, do not use within the library
func MustParse(text string) Version {
	ver, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ver
}

func isDecimal(part string) bool {
	if part == "" {
		return false
	}
	for _, c := range part {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (v Version) String() string {
	if v.raw != "" {
		return v.raw
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare compares this version to another version lexicographically by
// (major, minor, patch). This returns -1, 0, or 1 if this version is smaller,
// equal, or larger than the other version, respectively.
func (v Version) Compare(other Version) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, pair := range pairs {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// Equal indicates if this version and the other version are the same
// (major, minor, patch) triple, completing the comparison set next to
// Compare and LessThan.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}
