package cask

import "context"

type scopeContextKey struct{}

// BeginScopeContext opens a scope and attaches it to ctx. Attaching fails
// with ErrScopeAlreadyActive when ctx already carries a live scope;
// scopes do not nest. A context whose scope has ended may begin a new
// one.
func (c *Container) BeginScopeContext(ctx context.Context) (context.Context, error) {
	if s, ok := ScopeFrom(ctx); ok && !s.Ended() {
		return ctx, ErrScopeAlreadyActive
	}

	return context.WithValue(ctx, scopeContextKey{}, c.BeginScope()), nil
}

// ScopeFrom returns the scope attached to ctx, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeContextKey{}).(*Scope)

	return s, ok
}

// EndScope ends the scope attached to ctx. It fails with ErrNoActiveScope
// when ctx carries none and with ErrScopeEnded when the scope was already
// ended.
func EndScope(ctx context.Context) error {
	s, ok := ScopeFrom(ctx)
	if !ok {
		return ErrNoActiveScope
	}

	return s.End()
}

// ResolveContext resolves name through the scope attached to ctx, falling
// back to a plain container resolution when ctx carries none.
func (c *Container) ResolveContext(ctx context.Context, name string) (any, error) {
	if s, ok := ScopeFrom(ctx); ok {
		return s.Resolve(name)
	}

	return c.Resolve(name)
}
