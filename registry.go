package cask

import "sync"

// buildStrategy tells the resolver how a registration produces an
// instance.
type buildStrategy uint8

const (
	strategyInstance buildStrategy = iota
	strategyFactory
	strategyConstructor
)

func (s buildStrategy) String() string {
	switch s {
	case strategyInstance:
		return "instance"
	case strategyFactory:
		return "factory"
	case strategyConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}

// registrationKey is the composite store key: service identity plus
// registration key.
type registrationKey struct {
	name string
	key  string
}

func (k registrationKey) String() string {
	if k.key == "" {
		return k.name
	}
	return k.name + "[" + k.key + "]"
}

// registration is the descriptor stored per (identity, key): the build
// strategy payload, the lifetime, and the declared dependency references.
type registration struct {
	name           string
	key            string
	strategy       buildStrategy
	lifetime       Lifetime
	instance       any     // strategyInstance payload
	factory        Factory // strategyFactory and strategyConstructor payload
	implementation string  // strategyConstructor only
	deps           []Dep
}

// registry is the registration store. Overwrites win and keep the entry's
// original position; allFor returns first-insertion order.
type registry struct {
	mu      sync.RWMutex
	entries map[registrationKey]*registration
	order   []registrationKey
}

func newRegistry() *registry {
	return &registry{entries: make(map[registrationKey]*registration)}
}

// put stores reg under its (name, key) pair, replacing any existing
// descriptor. It reports whether an entry was overwritten.
func (r *registry) put(reg *registration) bool {
	k := registrationKey{name: reg.name, key: reg.key}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.entries[k]
	if !exists {
		r.order = append(r.order, k)
	}
	r.entries[k] = reg

	return exists
}

// get returns the descriptor for (name, key).
func (r *registry) get(name, key string) (*registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.entries[registrationKey{name: name, key: key}]

	return reg, ok
}

// allFor returns every registration under name, across all keys, in
// first-insertion order.
func (r *registry) allFor(name string) []*registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var regs []*registration
	for _, k := range r.order {
		if k.name == name {
			regs = append(regs, r.entries[k])
		}
	}

	return regs
}

// has reports whether (name, key) is registered.
func (r *registry) has(name, key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[registrationKey{name: name, key: key}]

	return ok
}

// snapshot returns all registrations in first-insertion order.
func (r *registry) snapshot() []*registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := make([]*registration, 0, len(r.order))
	for _, k := range r.order {
		regs = append(regs, r.entries[k])
	}

	return regs
}

// reset wipes the store.
func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[registrationKey]*registration)
	r.order = nil
}
