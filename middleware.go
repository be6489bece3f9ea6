package cask

// Middleware hooks into container activity: resolution and scope
// lifecycle. Implementations must be safe for concurrent use. Hooks fire
// for top-level operations, not for the dependency resolutions nested
// inside them.
type Middleware interface {
	// BeforeResolve runs ahead of a resolution. Returning an error aborts
	// the resolution with that error.
	BeforeResolve(name, key string) error

	// AfterResolve runs after a resolution completes, successful or not.
	AfterResolve(name, key string, instance any, err error)

	// ScopeBegan runs when a scope opens.
	ScopeBegan(token string)

	// ScopeEnded runs when a scope ends, with the joined disposal error.
	ScopeEnded(token string, err error)
}

// FuncMiddleware adapts plain functions to Middleware. Nil fields are
// skipped.
type FuncMiddleware struct {
	OnBeforeResolve func(name, key string) error
	OnAfterResolve  func(name, key string, instance any, err error)
	OnScopeBegan    func(token string)
	OnScopeEnded    func(token string, err error)
}

func (m *FuncMiddleware) BeforeResolve(name, key string) error {
	if m.OnBeforeResolve != nil {
		return m.OnBeforeResolve(name, key)
	}

	return nil
}

func (m *FuncMiddleware) AfterResolve(name, key string, instance any, err error) {
	if m.OnAfterResolve != nil {
		m.OnAfterResolve(name, key, instance, err)
	}
}

func (m *FuncMiddleware) ScopeBegan(token string) {
	if m.OnScopeBegan != nil {
		m.OnScopeBegan(token)
	}
}

func (m *FuncMiddleware) ScopeEnded(token string, err error) {
	if m.OnScopeEnded != nil {
		m.OnScopeEnded(token, err)
	}
}

// Use appends middleware to the container's chain. Middleware runs in
// registration order.
func (c *Container) Use(mw ...Middleware) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.middleware = append(c.middleware, mw...)
}

func (c *Container) snapshotMiddleware() []Middleware {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.middleware
}

func (c *Container) notifyBeforeResolve(name, key string) error {
	for _, m := range c.snapshotMiddleware() {
		if err := m.BeforeResolve(name, key); err != nil {
			return err
		}
	}

	return nil
}

func (c *Container) notifyAfterResolve(name, key string, instance any, err error) {
	for _, m := range c.snapshotMiddleware() {
		m.AfterResolve(name, key, instance, err)
	}
}

func (c *Container) notifyScopeBegan(token string) {
	for _, m := range c.snapshotMiddleware() {
		m.ScopeBegan(token)
	}
}

func (c *Container) notifyScopeEnded(token string, err error) {
	for _, m := range c.snapshotMiddleware() {
		m.ScopeEnded(token, err)
	}
}
