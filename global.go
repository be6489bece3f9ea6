package cask

import "sync"

var (
	globalMu        sync.Mutex
	globalContainer *Container
)

// Configure builds the process-wide container exactly once. The callback
// registers services into a fresh container; if it returns an error the
// container is discarded and Configure may be called again. A second call
// after a successful one returns ErrAlreadyConfigured.
func Configure(fn func(*Container) error) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalContainer != nil {
		return ErrAlreadyConfigured
	}

	c := New()
	if fn != nil {
		if err := fn(c); err != nil {
			return err
		}
	}

	globalContainer = c

	return nil
}

// IsConfigured reports whether Configure has completed successfully.
func IsConfigured() bool {
	globalMu.Lock()
	defer globalMu.Unlock()

	return globalContainer != nil
}

// Global returns the process-wide container, or ErrNotConfigured when
// Configure has not run.
func Global() (*Container, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalContainer == nil {
		return nil, ErrNotConfigured
	}

	return globalContainer, nil
}

// MustGlobal returns the process-wide container and panics when Configure
// has not run. Intended for wiring code where a missing container is a
// programming error.
func MustGlobal() *Container {
	c, err := Global()
	if err != nil {
		panic(err)
	}

	return c
}

// Reset disposes the process-wide container and clears it so Configure can
// run again. Disposal errors from cached singletons are joined and returned.
func Reset() error {
	globalMu.Lock()
	c := globalContainer
	globalContainer = nil
	globalMu.Unlock()

	if c == nil {
		return nil
	}

	return c.Reset()
}

// GetService resolves a service from the process-wide container.
func GetService[T any](name string) (T, error) {
	c, err := Global()
	if err != nil {
		var zero T
		return zero, err
	}

	return Resolve[T](c, name)
}

// GetKeyedService resolves a keyed service from the process-wide container.
func GetKeyedService[T any](name, key string) (T, error) {
	c, err := Global()
	if err != nil {
		var zero T
		return zero, err
	}

	return ResolveKeyed[T](c, name, key)
}

// TryGetService resolves a service from the process-wide container,
// reporting absence instead of failing. An unconfigured facade surfaces as
// an error, not as absence.
func TryGetService[T any](name string) (T, bool, error) {
	c, err := Global()
	if err != nil {
		var zero T
		return zero, false, err
	}

	return TryResolve[T](c, name)
}
