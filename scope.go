package cask

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Scope is a bounded resolution context with a private cache for Scoped
// registrations. Scopes come from Container.BeginScope, are safe for
// concurrent use, and must be ended exactly once. Singleton registrations
// resolved through a scope still come from the container cache; Transient
// registrations are constructed fresh.
type Scope struct {
	container *Container
	token     string
	cache     *instanceCache

	mu    sync.Mutex
	ended bool
}

func newScope(c *Container) *Scope {
	return &Scope{
		container: c,
		token:     uuid.New().String(),
		cache:     newInstanceCache(),
	}
}

// Token returns the scope's unique identifier.
func (s *Scope) Token() string {
	return s.token
}

// Ended reports whether End has been called.
func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

// Resolve returns the unkeyed instance for name, caching Scoped
// registrations in this scope.
func (s *Scope) Resolve(name string) (any, error) {
	return s.ResolveKeyed(name, "")
}

// ResolveKeyed returns the instance for name under key.
func (s *Scope) ResolveKeyed(name, key string) (any, error) {
	if s.Ended() {
		return nil, ErrScopeEnded
	}

	return s.container.resolveTop(s, name, key)
}

// TryResolve resolves name, reporting absence instead of an error when
// name is not registered. Every other failure propagates.
func (s *Scope) TryResolve(name string) (any, bool, error) {
	return s.TryResolveKeyed(name, "")
}

// TryResolveKeyed resolves name under key with TryResolve semantics.
func (s *Scope) TryResolveKeyed(name, key string) (any, bool, error) {
	v, err := s.ResolveKeyed(name, key)
	if err != nil {
		if errors.Is(err, ErrNotRegistered) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return v, true, nil
}

// GetAll resolves every registration under name, all keys, in
// first-insertion order, through this scope. Registrations that fail to
// resolve are skipped.
func (s *Scope) GetAll(name string) []any {
	if s.Ended() {
		return nil
	}

	var out []any
	for _, reg := range s.container.registry.allFor(name) {
		v, err := s.container.resolveTop(s, reg.name, reg.key)
		if err != nil {
			continue
		}
		out = append(out, v)
	}

	return out
}

// End closes the scope: cached instances that implement Disposable are
// released newest first and the cache is cleared. Further resolutions
// fail with ErrScopeEnded, as does ending the scope a second time.
func (s *Scope) End() error {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return ErrScopeEnded
	}
	s.ended = true
	s.mu.Unlock()

	var dispose []error
	for _, v := range s.cache.drain() {
		if d, ok := v.(Disposable); ok {
			if err := d.Dispose(); err != nil {
				dispose = append(dispose, err)
			}
		}
	}

	err := errors.Join(dispose...)
	s.container.notifyScopeEnded(s.token, err)

	return err
}
