package cask

// Ident is a typed service identity: the string name plus the Go type the
// registration produces. It gives call sites compile-time typing over the
// same string-keyed store, and its Ref methods bridge typed identities
// into declared dependency lists.
type Ident[T any] struct {
	name string
}

// NewIdent creates a typed identity for name.
func NewIdent[T any](name string) Ident[T] {
	return Ident[T]{name: name}
}

// Name returns the underlying identity string.
func (id Ident[T]) Name() string {
	return id.name
}

// Ref returns a dependency reference to this identity.
func (id Ident[T]) Ref() Dep {
	return Ref(id.name)
}

// RefKeyed returns a keyed dependency reference to this identity.
func (id Ident[T]) RefKeyed(key string) Dep {
	return RefKeyed(id.name, key)
}

// Register stores a typed factory registration under this identity.
func (id Ident[T]) Register(c *Container, factory func(deps ...any) (T, error), opts ...RegisterOption) error {
	return c.Register(id.name, wrapTyped(factory), opts...)
}

// RegisterValue stores a prebuilt value under this identity.
func (id Ident[T]) RegisterValue(c *Container, value T, opts ...RegisterOption) error {
	return c.RegisterInstance(id.name, value, opts...)
}

// Resolve resolves this identity from c.
func (id Ident[T]) Resolve(c *Container) (T, error) {
	return Resolve[T](c, id.name)
}

// ResolveKeyed resolves this identity under key from c.
func (id Ident[T]) ResolveKeyed(c *Container, key string) (T, error) {
	return ResolveKeyed[T](c, id.name, key)
}

// ResolveIn resolves this identity through scope.
func (id Ident[T]) ResolveIn(s *Scope) (T, error) {
	return ResolveScoped[T](s, id.name)
}

// Must resolves this identity from c and panics on failure.
func (id Ident[T]) Must(c *Container) T {
	return Must[T](c, id.name)
}
