package cheatsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/roster"
)

// ErrFileNotFound indicates the roster file does not exist.
var ErrFileNotFound = roster.ErrFileNotFound

// ErrInvalidRoster indicates the roster JSON does not have the expected shape.
var ErrInvalidRoster = roster.ErrInvalidRoster

// ErrMalformedProfile indicates an Abilities profile without usable text.
var ErrMalformedProfile = errors.New("malformed abilities profile")

// ProfileError describes an Abilities profile that could not be read.
type ProfileError struct {
	Source  string
	Profile string // profile name, empty when absent
	Reason  string // "no characteristics", "no $text", "no name"
}

func (e *ProfileError) Error() string {
	if e.Profile == "" {
		return fmt.Sprintf("%v on %q: %s", ErrMalformedProfile, e.Source, e.Reason)
	}
	return fmt.Sprintf("%v %q on %q: %s", ErrMalformedProfile, e.Profile, e.Source, e.Reason)
}

func (e *ProfileError) Unwrap() error {
	return ErrMalformedProfile
}

// NewProfileError creates a new ProfileError.
func NewProfileError(source, profile, reason string) *ProfileError {
	return &ProfileError{
		Source:  source,
		Profile: profile,
		Reason:  reason,
	}
}
