package version

import "fmt"

// MalformedVersionError indicates that a version string does not decompose
// into exactly three non-negative integers separated by ".". This is the only
// failure mode of parsing; once two versions parse, compatibility evaluation
// cannot fail.
type MalformedVersionError struct {
	Raw    string
	Reason string
}

func newMalformedVersionError(raw, reason string) *MalformedVersionError {
	return &MalformedVersionError{
		Raw:    raw,
		Reason: reason,
	}
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q: %s", e.Raw, e.Reason)
}
