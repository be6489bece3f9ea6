package cask

// Validate statically checks the registered graph: every declared
// non-optional reference must name a registration, and the declared edges
// must not form a cycle. It complements the per-call cycle detection by
// catching misconfiguration before the first resolve, so wiring code can
// fail at startup instead of mid-request.
func (c *Container) Validate() error {
	regs := c.registry.snapshot()

	index := make(map[registrationKey]*registration, len(regs))
	for _, reg := range regs {
		index[registrationKey{name: reg.name, key: reg.key}] = reg
	}

	for _, reg := range regs {
		for _, dep := range reg.deps {
			if dep.Optional {
				continue
			}
			if _, ok := index[registrationKey{name: dep.Name, key: dep.Key}]; !ok {
				return &NotRegisteredError{Name: dep.Name, Key: dep.Key}
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[registrationKey]int, len(regs))

	var visit func(k registrationKey, path []string) error
	visit = func(k registrationKey, path []string) error {
		switch state[k] {
		case done:
			return nil
		case visiting:
			cycle := path
			for i, frame := range path {
				if frame == k.String() {
					cycle = path[i:]
					break
				}
			}

			return &CircularDependencyError{Path: append(append([]string{}, cycle...), k.String())}
		}

		state[k] = visiting
		path = append(path, k.String())

		if reg, ok := index[k]; ok {
			for _, dep := range reg.deps {
				dk := registrationKey{name: dep.Name, key: dep.Key}
				if _, exists := index[dk]; !exists {
					continue // optional and absent, no edge to walk
				}
				if err := visit(dk, path); err != nil {
					return err
				}
			}
		}

		state[k] = done

		return nil
	}

	for _, reg := range regs {
		if err := visit(registrationKey{name: reg.name, key: reg.key}, nil); err != nil {
			return err
		}
	}

	return nil
}
