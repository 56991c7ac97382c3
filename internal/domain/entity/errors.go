package entity

import "errors"

var (
	// ErrTabNotFound indicates an operation referenced an unknown tab handle.
	// It signals a desync between the registry and the tab strip.
	ErrTabNotFound = errors.New("tab not found")

	// ErrUnknownProfile indicates a request for an undefined performance profile.
	ErrUnknownProfile = errors.New("unknown performance profile")

	// ErrInvalidProfile indicates a profile definition that cannot be registered.
	ErrInvalidProfile = errors.New("invalid performance profile")
)
