package pokeapi

import "errors"

// Common PokeAPI errors.
var (
	// ErrIndexUnavailable is returned when the species index cannot be
	// fetched. Individual detail failures degrade instead of failing.
	ErrIndexUnavailable = errors.New("species index unavailable")
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
)
