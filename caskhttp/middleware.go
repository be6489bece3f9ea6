// Package caskhttp adapts cask scopes to net/http. RequestScope gives each
// request its own scope so scoped services live exactly as long as the
// request, with their Dispose hooks running when the handler returns.
package caskhttp

import (
	"net/http"

	"github.com/caskio/cask"
)

// RequestScope returns middleware that opens a scope per request and
// attaches it to the request context. The scope ends when the handler
// returns; disposal errors surface through the container's ScopeEnded
// middleware hook rather than the response.
func RequestScope(c *cask.Container) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := c.BeginScopeContext(r.Context())
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			defer func() { _ = cask.EndScope(ctx) }()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveRequest resolves name through the request's scope. It fails with
// cask.ErrNoActiveScope when the request did not pass through RequestScope.
func ResolveRequest[T any](r *http.Request, name string) (T, error) {
	s, ok := cask.ScopeFrom(r.Context())
	if !ok {
		var zero T
		return zero, cask.ErrNoActiveScope
	}

	return cask.ResolveScoped[T](s, name)
}

// ResolveRequestKeyed resolves a (name, key) pair through the request's
// scope.
func ResolveRequestKeyed[T any](r *http.Request, name, key string) (T, error) {
	s, ok := cask.ScopeFrom(r.Context())
	if !ok {
		var zero T
		return zero, cask.ErrNoActiveScope
	}

	return cask.ResolveScopedKeyed[T](s, name, key)
}

// MustResolveRequest resolves name through the request's scope and panics
// on failure. Intended for handlers registered behind RequestScope, where
// a missing scope is a wiring bug.
func MustResolveRequest[T any](r *http.Request, name string) T {
	v, err := ResolveRequest[T](r, name)
	if err != nil {
		panic(err)
	}

	return v
}
