package cask

import "errors"

// resolver carries the call-local state of one top-level resolution: the
// scope in effect (nil when resolving straight from the container) and
// the resolution stack used for cycle detection. A fresh resolver exists
// per call; nothing here is ever shared between calls.
type resolver struct {
	container *Container
	scope     *Scope
	stack     []registrationKey
}

func (c *Container) newResolver(scope *Scope) *resolver {
	return &resolver{container: c, scope: scope}
}

// resolve produces an instance for (name, key), walking declared
// dependencies depth first. Frames are pushed before descending and
// popped on every exit path, so a failed branch never poisons a sibling
// resolution in the same call.
func (r *resolver) resolve(name, key string) (any, error) {
	k := registrationKey{name: name, key: key}

	if r.onStack(k) {
		return nil, &CircularDependencyError{Path: r.cyclePath(k)}
	}

	r.stack = append(r.stack, k)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	reg, ok := r.container.registry.get(name, key)
	if !ok {
		return nil, &NotRegisteredError{Name: name, Key: key}
	}

	return r.build(reg, k)
}

func (r *resolver) onStack(k registrationKey) bool {
	for _, frame := range r.stack {
		if frame == k {
			return true
		}
	}

	return false
}

// cyclePath renders the stack from the first occurrence of k through the
// repeat: resolving a where a -> b -> a yields [a b a].
func (r *resolver) cyclePath(k registrationKey) []string {
	start := 0
	for i, frame := range r.stack {
		if frame == k {
			start = i
			break
		}
	}

	path := make([]string, 0, len(r.stack)-start+1)
	for _, frame := range r.stack[start:] {
		path = append(path, frame.String())
	}

	return append(path, k.String())
}

// build dispatches on strategy and lifetime. Prebuilt instances return
// as-is regardless of lifetime.
func (r *resolver) build(reg *registration, k registrationKey) (any, error) {
	if reg.strategy == strategyInstance {
		return reg.instance, nil
	}

	switch reg.lifetime {
	case Singleton:
		return r.container.singletons.getOrBuild(k, func() (any, error) {
			return r.construct(reg)
		})
	case Scoped:
		if r.scope == nil {
			return nil, &ScopeRequiredError{Name: reg.name}
		}

		return r.scope.cache.getOrBuild(k, func() (any, error) {
			return r.construct(reg)
		})
	default:
		return r.construct(reg)
	}
}

// construct resolves the declared references in order and invokes the
// registration's build function with the results.
func (r *resolver) construct(reg *registration) (any, error) {
	args := make([]any, len(reg.deps))
	for i, dep := range reg.deps {
		v, err := r.resolveDep(dep)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	v, err := reg.factory(args...)
	if err != nil {
		return nil, &BuildError{Name: reg.name, Key: reg.key, Err: err}
	}

	return v, nil
}

func (r *resolver) resolveDep(dep Dep) (any, error) {
	v, err := r.resolve(dep.Name, dep.Key)
	if err != nil && dep.Optional && errors.Is(err, ErrNotRegistered) {
		return nil, nil
	}

	return v, err
}
