package cask

import (
	"errors"
	"fmt"
	"sync"
)

// Container registers services and resolves them honoring lifetimes,
// declared dependencies, and registration keys. All methods are safe for
// concurrent use. Create containers with New.
type Container struct {
	registry   *registry
	singletons *instanceCache

	mu         sync.RWMutex
	middleware []Middleware
}

// Register stores a factory registration for name. The factory receives
// the services declared with WithDeps, resolved, in declaration order.
// Re-registering an existing (name, key) pair replaces the descriptor and
// purges any cached singleton; it is not an error.
func (c *Container) Register(name string, factory Factory, opts ...RegisterOption) error {
	s := applyRegisterOptions(opts)

	if name == "" {
		return &InvalidRegistrationError{Name: name, Reason: "name cannot be empty"}
	}
	if factory == nil {
		return &InvalidRegistrationError{Name: name, Reason: "factory cannot be nil"}
	}
	if s.lifetimeSet && !s.lifetime.IsValid() {
		return &InvalidRegistrationError{Name: name, Reason: "unknown lifetime"}
	}
	if dup, ok := duplicateDep(s.deps); ok {
		return &InvalidRegistrationError{Name: name, Reason: fmt.Sprintf("dependency %q declared twice", dup)}
	}

	c.store(&registration{
		name:     name,
		key:      s.key,
		strategy: strategyFactory,
		lifetime: s.lifetime,
		factory:  factory,
		deps:     s.deps,
	})

	return nil
}

// RegisterInstance stores a prebuilt value for name. Every resolution
// returns the value as-is; lifetime does not apply.
func (c *Container) RegisterInstance(name string, value any, opts ...RegisterOption) error {
	s := applyRegisterOptions(opts)

	if name == "" {
		return &InvalidRegistrationError{Name: name, Reason: "name cannot be empty"}
	}
	if len(s.deps) > 0 {
		return &InvalidRegistrationError{Name: name, Reason: "instance registrations take no dependencies"}
	}

	c.store(&registration{
		name:     name,
		key:      s.key,
		strategy: strategyInstance,
		lifetime: Singleton,
		instance: value,
	})

	return nil
}

// RegisterConstructor stores a constructor-injection registration: ctor's
// Build runs with ctor's declared references resolved. An empty
// Implementation defaults to name, registering the component as its own
// implementation.
func (c *Container) RegisterConstructor(name string, ctor *Constructor, opts ...RegisterOption) error {
	s := applyRegisterOptions(opts)

	if name == "" {
		return &InvalidRegistrationError{Name: name, Reason: "name cannot be empty"}
	}
	if ctor == nil || ctor.Build == nil {
		return &InvalidRegistrationError{Name: name, Reason: "constructor cannot be nil"}
	}
	if len(s.deps) > 0 {
		return &InvalidRegistrationError{Name: name, Reason: "constructor registrations declare dependencies on the Constructor"}
	}
	if s.lifetimeSet && !s.lifetime.IsValid() {
		return &InvalidRegistrationError{Name: name, Reason: "unknown lifetime"}
	}
	if dup, ok := duplicateDep(ctor.Deps); ok {
		return &InvalidRegistrationError{Name: name, Reason: fmt.Sprintf("dependency %q declared twice", dup)}
	}

	impl := ctor.Implementation
	if impl == "" {
		impl = name
	}

	c.store(&registration{
		name:           name,
		key:            s.key,
		strategy:       strategyConstructor,
		lifetime:       s.lifetime,
		factory:        ctor.Build,
		implementation: impl,
		deps:           ctor.Deps,
	})

	return nil
}

// store writes the descriptor and purges any cached singleton so the new
// descriptor wins for every future resolution.
func (c *Container) store(reg *registration) {
	c.registry.put(reg)
	c.singletons.purge(registrationKey{name: reg.name, key: reg.key})
}

// Resolve returns the unkeyed instance for name.
func (c *Container) Resolve(name string) (any, error) {
	return c.resolveTop(nil, name, "")
}

// ResolveKeyed returns the instance for name under key.
func (c *Container) ResolveKeyed(name, key string) (any, error) {
	return c.resolveTop(nil, name, key)
}

// TryResolve resolves name, reporting absence instead of an error when
// name is not registered. Every other failure propagates.
func (c *Container) TryResolve(name string) (any, bool, error) {
	return c.TryResolveKeyed(name, "")
}

// TryResolveKeyed resolves name under key with TryResolve semantics.
func (c *Container) TryResolveKeyed(name, key string) (any, bool, error) {
	v, err := c.resolveTop(nil, name, key)
	if err != nil {
		if errors.Is(err, ErrNotRegistered) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return v, true, nil
}

// GetAll resolves every registration under name, all keys, in
// first-insertion order. Registrations that fail to resolve are skipped;
// AfterResolve middleware still observes the failures.
func (c *Container) GetAll(name string) []any {
	var out []any
	for _, reg := range c.registry.allFor(name) {
		v, err := c.resolveTop(nil, reg.name, reg.key)
		if err != nil {
			continue
		}
		out = append(out, v)
	}

	return out
}

// IsRegistered reports whether name has an unkeyed registration.
func (c *Container) IsRegistered(name string) bool {
	return c.registry.has(name, "")
}

// IsRegisteredKeyed reports whether name is registered under key.
func (c *Container) IsRegisteredKeyed(name, key string) bool {
	return c.registry.has(name, key)
}

// BeginScope opens a new scope with a fresh token and an empty cache.
func (c *Container) BeginScope() *Scope {
	s := newScope(c)
	c.notifyScopeBegan(s.token)

	return s
}

// Reset wipes the container: registrations are dropped and cached
// singletons are disposed, newest first. Disposal failures are joined
// into the returned error. Intended for test isolation.
func (c *Container) Reset() error {
	c.registry.reset()

	var dispose []error
	for _, v := range c.singletons.drain() {
		if d, ok := v.(Disposable); ok {
			if err := d.Dispose(); err != nil {
				dispose = append(dispose, err)
			}
		}
	}

	return errors.Join(dispose...)
}

// resolveTop is the entry point for every public resolution. It runs the
// middleware chain around a fresh resolver whose stack lives only for
// this call.
func (c *Container) resolveTop(scope *Scope, name, key string) (any, error) {
	if err := c.notifyBeforeResolve(name, key); err != nil {
		return nil, err
	}

	v, err := c.newResolver(scope).resolve(name, key)

	c.notifyAfterResolve(name, key, v, err)

	return v, err
}
