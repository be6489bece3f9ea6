package cask

// RegisterOption customizes a registration.
type RegisterOption func(*registerSettings)

type registerSettings struct {
	key         string
	lifetime    Lifetime
	lifetimeSet bool
	deps        []Dep
}

func applyRegisterOptions(opts []RegisterOption) registerSettings {
	var s registerSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithLifetime sets the registration's lifetime. The default is
// Transient.
func WithLifetime(l Lifetime) RegisterOption {
	return func(s *registerSettings) {
		s.lifetime = l
		s.lifetimeSet = true
	}
}

// AsSingleton marks the registration Singleton: one shared instance per
// container.
func AsSingleton() RegisterOption { return WithLifetime(Singleton) }

// AsScoped marks the registration Scoped: one instance per scope.
func AsScoped() RegisterOption { return WithLifetime(Scoped) }

// AsTransient marks the registration Transient: a fresh instance per
// resolution. Transient is already the default; the option exists for
// explicit call sites.
func AsTransient() RegisterOption { return WithLifetime(Transient) }

// Keyed stores the registration under key so several registrations can
// coexist under one identity.
func Keyed(key string) RegisterOption {
	return func(s *registerSettings) { s.key = key }
}

// WithDeps declares the dependency references resolved and passed to the
// factory, in order. Valid only with Register; constructors carry their
// own declarations and instance registrations take none.
func WithDeps(deps ...Dep) RegisterOption {
	return func(s *registerSettings) { s.deps = append(s.deps, deps...) }
}
