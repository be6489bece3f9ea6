package cask

import "sync"

// Lazy defers resolution of a service until first use, then caches the
// outcome. Useful for deferring expensive construction or breaking
// construction-time ordering between services that only need each other
// at call time.
type Lazy[T any] struct {
	container *Container
	name      string
	key       string

	once  sync.Once
	value T
	err   error
}

// NewLazy creates a lazy accessor for the unkeyed registration of name.
func NewLazy[T any](c *Container, name string) *Lazy[T] {
	return &Lazy[T]{container: c, name: name}
}

// NewLazyKeyed creates a lazy accessor for name under key.
func NewLazyKeyed[T any](c *Container, name, key string) *Lazy[T] {
	return &Lazy[T]{container: c, name: name, key: key}
}

// Get resolves the service on first call and returns the cached outcome
// on every later call, error included.
func (l *Lazy[T]) Get() (T, error) {
	l.once.Do(func() {
		l.value, l.err = ResolveKeyed[T](l.container, l.name, l.key)
	})

	return l.value, l.err
}

// MustGet is Get panicking on failure.
func (l *Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// Provider returns a fresh resolution on every call, so Transient
// registrations produce a new instance each time.
type Provider[T any] func() (T, error)

// NewProvider creates a provider for the unkeyed registration of name.
func NewProvider[T any](c *Container, name string) Provider[T] {
	return func() (T, error) {
		return Resolve[T](c, name)
	}
}

// NewProviderKeyed creates a provider for name under key.
func NewProviderKeyed[T any](c *Container, name, key string) Provider[T] {
	return func() (T, error) {
		return ResolveKeyed[T](c, name, key)
	}
}
