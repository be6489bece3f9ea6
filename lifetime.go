package cask

import "fmt"

// Lifetime controls when the container constructs a fresh instance for a
// registration and how long that instance is reused.
type Lifetime int

const (
	// Transient constructs a new instance on every resolution. This is
	// the default when a registration does not name a lifetime.
	Transient Lifetime = iota

	// Singleton constructs at most one instance per container for each
	// (identity, key) pair. Construction happens on first resolution and
	// is atomic under concurrent access.
	Singleton

	// Scoped constructs one instance per scope for each (identity, key)
	// pair. Resolving a Scoped registration requires an active scope.
	Scoped
)

// String returns the lowercase name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// IsValid reports whether l is one of the declared lifetimes.
func (l Lifetime) IsValid() bool {
	return l >= Transient && l <= Scoped
}
