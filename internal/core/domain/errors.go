package domain

import "errors"

var (
	// ErrNotFound indicates a missing input or output directory.
	ErrNotFound = errors.New("not found")

	// ErrConfiguration indicates the material shader could not be resolved.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnmatchedTexture is returned in strict mode for files with no known suffix.
	ErrUnmatchedTexture = errors.New("unmatched texture")

	// ErrDuplicateRole is returned in strict mode when two files fill the same slot of a group.
	ErrDuplicateRole = errors.New("duplicate texture role")

	// ErrConversionInProgress is returned when a pass is triggered while another one runs.
	ErrConversionInProgress = errors.New("conversion already in progress")
)
