package cask

// Module groups related registrations so wiring can be composed from
// units (a storage module, an http module) instead of one long function.
type Module interface {
	Register(c *Container) error
}

// ModuleFunc adapts a function to Module.
type ModuleFunc func(c *Container) error

// Register implements Module.
func (f ModuleFunc) Register(c *Container) error {
	return f(c)
}

// Apply runs each module's Register against c, stopping at the first
// failure. Nil modules are skipped.
func (c *Container) Apply(modules ...Module) error {
	for _, m := range modules {
		if m == nil {
			continue
		}
		if err := m.Register(c); err != nil {
			return err
		}
	}

	return nil
}
