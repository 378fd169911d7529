package model

import "errors"

var (
	// ErrMissingField is returned when a required request field is
	// empty. It is never silently defaulted.
	ErrMissingField = errors.New("missing required field")

	// ErrUpstream is returned when the places collaborator failed and
	// produced no candidates at all.
	ErrUpstream = errors.New("upstream fetch failed")

	// ErrNotFound is returned when a place lookup by name matches
	// nothing.
	ErrNotFound = errors.New("not found")
)
