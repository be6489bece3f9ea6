package cask

// ServiceInfo describes a single registration for diagnostics and tooling.
type ServiceInfo struct {
	Name           string
	Key            string
	Registered     bool
	Lifetime       Lifetime
	Strategy       string
	Implementation string
	Dependencies   []string
}

// Inspect reports registration details for a name. The returned info carries
// the queried name even when nothing is registered, so callers can log it
// directly.
func (c *Container) Inspect(name string) ServiceInfo {
	return c.InspectKeyed(name, "")
}

// InspectKeyed reports registration details for a (name, key) pair.
func (c *Container) InspectKeyed(name, key string) ServiceInfo {
	reg, ok := c.registry.get(name, key)
	if !ok {
		return ServiceInfo{Name: name, Key: key}
	}

	return infoFor(reg)
}

// Registrations lists every registration in first-insertion order.
func (c *Container) Registrations() []ServiceInfo {
	regs := c.registry.snapshot()

	infos := make([]ServiceInfo, 0, len(regs))
	for _, reg := range regs {
		infos = append(infos, infoFor(reg))
	}

	return infos
}

func infoFor(reg *registration) ServiceInfo {
	return ServiceInfo{
		Name:           reg.name,
		Key:            reg.key,
		Registered:     true,
		Lifetime:       reg.lifetime,
		Strategy:       reg.strategy.String(),
		Implementation: reg.implementation,
		Dependencies:   DepNames(reg.deps),
	}
}
