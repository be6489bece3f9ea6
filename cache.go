package cask

import "sync"

// instanceCache holds constructed instances per (identity, key). The
// container owns one for singletons and every scope owns one for its
// scoped instances. Each entry carries its own lock so check-construct-
// store is atomic per registration while distinct registrations build
// concurrently.
type instanceCache struct {
	mu    sync.Mutex
	slots map[registrationKey]*cacheSlot
	order []registrationKey // creation order, disposal runs it backwards
}

type cacheSlot struct {
	mu    sync.Mutex
	built bool
	value any
}

func newInstanceCache() *instanceCache {
	return &instanceCache{slots: make(map[registrationKey]*cacheSlot)}
}

func (c *instanceCache) slot(k registrationKey) *cacheSlot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[k]
	if !ok {
		s = &cacheSlot{}
		c.slots[k] = s
	}

	return s
}

// getOrBuild returns the cached instance for k, constructing it with
// build exactly once. The slot lock is held across construction so
// concurrent first resolutions observe a single instance. Slot locks nest
// parent to child along declared edges; a request that would need the
// same slot twice fails on the resolution stack before a second acquire.
func (c *instanceCache) getOrBuild(k registrationKey, build func() (any, error)) (any, error) {
	s := c.slot(k)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return s.value, nil
	}

	value, err := build()
	if err != nil {
		return nil, err
	}

	s.value = value
	s.built = true
	c.recordBuilt(k)

	return value, nil
}

func (c *instanceCache) recordBuilt(k registrationKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = append(c.order, k)
}

// purge drops the slot for k so the next resolution constructs afresh.
func (c *instanceCache) purge(k registrationKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.slots, k)
}

// drain empties the cache and returns the built instances in reverse
// creation order, ready for disposal. Slot locks are taken after the
// cache lock is released so an in-flight build cannot deadlock a drain.
func (c *instanceCache) drain() []any {
	c.mu.Lock()
	order := c.order
	slots := c.slots
	c.slots = make(map[registrationKey]*cacheSlot)
	c.order = nil
	c.mu.Unlock()

	values := make([]any, 0, len(order))
	seen := make(map[registrationKey]bool, len(order))

	for i := len(order) - 1; i >= 0; i-- {
		k := order[i]
		if seen[k] {
			continue
		}
		seen[k] = true

		s, ok := slots[k]
		if !ok {
			continue
		}

		s.mu.Lock()
		if s.built {
			values = append(values, s.value)
		}
		s.mu.Unlock()
	}

	return values
}
