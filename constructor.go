package cask

// Constructor describes how to build a concrete implementation: its
// identity, its build function, and the dependency references passed to
// the build function in order. One Constructor may be registered under
// several service identities, an interface name and the implementation's
// own name for instance.
type Constructor struct {
	// Implementation names the concrete component. When empty, it
	// defaults to the identity the Constructor is registered under.
	Implementation string

	// Build produces the instance from the resolved dependencies.
	Build Factory

	// Deps are the references resolved and passed to Build, in order.
	Deps []Dep
}

// NewConstructor builds a Constructor for implementation with its
// declared dependencies.
func NewConstructor(implementation string, build Factory, deps ...Dep) *Constructor {
	return &Constructor{Implementation: implementation, Build: build, Deps: deps}
}
