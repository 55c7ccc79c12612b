package model

import "errors"

// Errors surfaced by the generator core. Callers compare with errors.Is.
var (
	// ErrInvalidLength is returned when a length falls outside [MinLength, MaxLength].
	ErrInvalidLength = errors.New("invalid length: must be between 1 and 128")

	// ErrEmptyAlphabet is returned when no character category is enabled in standard mode.
	ErrEmptyAlphabet = errors.New("empty alphabet: enable at least one character set")

	// ErrPresetNotFound is returned for an unknown preset name.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrUnknownScorer is returned for an unknown strength scorer name.
	ErrUnknownScorer = errors.New("unknown strength scorer")
)
