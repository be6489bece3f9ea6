package cask

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every failure the container reports unwraps to one of
// these, so callers classify with errors.Is and read structured detail
// with errors.As.
var (
	// ErrNotRegistered reports a resolution of an identity (and key) that
	// has no registration.
	ErrNotRegistered = errors.New("service not registered")

	// ErrCircularDependency reports a resolution that revisited an
	// identity already under construction in the same call.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrScopeRequired reports a Scoped registration resolved with no
	// active scope.
	ErrScopeRequired = errors.New("scoped service requires an active scope")

	// ErrScopeAlreadyActive reports an attempt to attach a second live
	// scope to a context. Scopes do not nest.
	ErrScopeAlreadyActive = errors.New("a scope is already active")

	// ErrNoActiveScope reports a scope operation on a context that
	// carries no scope.
	ErrNoActiveScope = errors.New("no active scope")

	// ErrScopeEnded reports use of a scope after End.
	ErrScopeEnded = errors.New("scope has ended")

	// ErrTypeMismatch reports a typed resolution whose instance does not
	// have the requested type.
	ErrTypeMismatch = errors.New("resolved service has unexpected type")

	// ErrInvalidRegistration reports a malformed registration.
	ErrInvalidRegistration = errors.New("invalid registration")

	// ErrAlreadyConfigured reports a second Configure of the process
	// default container.
	ErrAlreadyConfigured = errors.New("default container already configured")

	// ErrNotConfigured reports use of the process default container
	// before Configure.
	ErrNotConfigured = errors.New("default container not configured")
)

// NotRegisteredError carries the identity and key of a failed lookup.
type NotRegisteredError struct {
	Name string
	Key  string
}

func (e *NotRegisteredError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("service %q not registered", e.Name)
	}
	return fmt.Sprintf("service %q (key %q) not registered", e.Name, e.Key)
}

func (e *NotRegisteredError) Unwrap() error { return ErrNotRegistered }

// CircularDependencyError carries the full request path from the first
// occurrence of the repeated identity through its repeat, e.g. [a b a].
type CircularDependencyError struct {
	Path []string
}

func (e *CircularDependencyError) Error() string {
	return "circular dependency detected: " + strings.Join(e.Path, " -> ")
}

func (e *CircularDependencyError) Unwrap() error { return ErrCircularDependency }

// ScopeRequiredError names the Scoped registration that was resolved with
// no active scope.
type ScopeRequiredError struct {
	Name string
}

func (e *ScopeRequiredError) Error() string {
	return fmt.Sprintf("scoped service %q must be resolved from a scope", e.Name)
}

func (e *ScopeRequiredError) Unwrap() error { return ErrScopeRequired }

// TypeMismatchError reports the concrete type a typed resolution found
// and the type it wanted.
type TypeMismatchError struct {
	Name string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("service %q has type %s, want %s", e.Name, e.Got, e.Want)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// InvalidRegistrationError explains why a registration was rejected.
type InvalidRegistrationError struct {
	Name   string
	Reason string
}

func (e *InvalidRegistrationError) Error() string {
	return fmt.Sprintf("invalid registration %q: %s", e.Name, e.Reason)
}

func (e *InvalidRegistrationError) Unwrap() error { return ErrInvalidRegistration }

// BuildError wraps a failure returned by a factory or constructor with
// the identity that was being built. Unwrap exposes the cause.
type BuildError struct {
	Name string
	Key  string
	Err  error
}

func (e *BuildError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("building service %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("building service %q (key %q): %v", e.Name, e.Key, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
