package cask

import (
	"fmt"
	"reflect"
)

// Resolve resolves name from c and asserts the instance to T.
func Resolve[T any](c *Container, name string) (T, error) {
	v, err := c.Resolve(name)

	return assertType[T](name, v, err)
}

// ResolveKeyed resolves name under key from c and asserts the instance
// to T.
func ResolveKeyed[T any](c *Container, name, key string) (T, error) {
	v, err := c.ResolveKeyed(name, key)

	return assertType[T](name, v, err)
}

// TryResolve resolves name from c, reporting absence instead of an error
// when name is not registered.
func TryResolve[T any](c *Container, name string) (T, bool, error) {
	var zero T

	v, ok, err := c.TryResolve(name)
	if err != nil || !ok {
		return zero, false, err
	}

	typed, err := assertType[T](name, v, nil)
	if err != nil {
		return zero, false, err
	}

	return typed, true, nil
}

// Must resolves name from c and panics on failure. Intended for wiring
// code that cannot proceed without the service.
func Must[T any](c *Container, name string) T {
	v, err := Resolve[T](c, name)
	if err != nil {
		panic(err)
	}

	return v
}

// ResolveScoped resolves name through scope and asserts the instance
// to T.
func ResolveScoped[T any](s *Scope, name string) (T, error) {
	v, err := s.Resolve(name)

	return assertType[T](name, v, err)
}

// ResolveScopedKeyed resolves a (name, key) pair through scope and asserts
// the instance to T.
func ResolveScopedKeyed[T any](s *Scope, name, key string) (T, error) {
	v, err := s.ResolveKeyed(name, key)

	return assertType[T](name, v, err)
}

// MustScoped resolves name through scope and panics on failure.
func MustScoped[T any](s *Scope, name string) T {
	v, err := ResolveScoped[T](s, name)
	if err != nil {
		panic(err)
	}

	return v
}

// RegisterSingleton registers a typed factory under name with Singleton
// lifetime.
func RegisterSingleton[T any](c *Container, name string, factory func(deps ...any) (T, error), opts ...RegisterOption) error {
	return c.Register(name, wrapTyped(factory), append(opts, AsSingleton())...)
}

// RegisterScoped registers a typed factory under name with Scoped
// lifetime.
func RegisterScoped[T any](c *Container, name string, factory func(deps ...any) (T, error), opts ...RegisterOption) error {
	return c.Register(name, wrapTyped(factory), append(opts, AsScoped())...)
}

// RegisterTransient registers a typed factory under name with Transient
// lifetime.
func RegisterTransient[T any](c *Container, name string, factory func(deps ...any) (T, error), opts ...RegisterOption) error {
	return c.Register(name, wrapTyped(factory), append(opts, AsTransient())...)
}

// RegisterValue registers a prebuilt value under name.
func RegisterValue[T any](c *Container, name string, value T, opts ...RegisterOption) error {
	return c.RegisterInstance(name, value, opts...)
}

func wrapTyped[T any](factory func(deps ...any) (T, error)) Factory {
	return func(deps ...any) (any, error) {
		return factory(deps...)
	}
}

func assertType[T any](name string, v any, err error) (T, error) {
	var zero T

	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Name: name,
			Want: typeName[T](),
			Got:  fmt.Sprintf("%T", v),
		}
	}

	return typed, nil
}

// typeName renders T, including interface types that %T on a zero value
// cannot name. Reflection here only labels mismatch errors; wiring stays
// declaration driven.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
