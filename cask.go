// Package cask is a dependency injection container built around string
// service identities, registration keys, declared dependencies, and three
// lifetimes (transient, singleton, scoped).
//
// Registrations are explicit descriptors: a prebuilt value, a factory, or
// a constructor, plus the ordered dependency references the build function
// consumes. Resolution walks those references and caches instances
// according to lifetime; cycles are reported with the full request path.
// Scopes give
// bounded work (an HTTP request, a job) a private instance cache with
// deterministic disposal at the end.
package cask

// Factory produces a service instance from its resolved dependencies,
// passed in the order the registration declared them.
type Factory func(deps ...any) (any, error)

// Disposable is the cleanup contract. Scope.End and Container.Reset call
// Dispose on cached instances that implement it, newest first.
type Disposable interface {
	Dispose() error
}

// New creates an empty container.
func New() *Container {
	return &Container{
		registry:   newRegistry(),
		singletons: newInstanceCache(),
	}
}
