package cask

// Dep is a declared dependency reference: the identity (and optional
// registration key) of a service a factory or constructor consumes. The
// resolver resolves declared references in order and passes the results
// to the build function as arguments.
type Dep struct {
	// Name is the service identity the reference points at.
	Name string

	// Key narrows the reference to a keyed registration. Empty means the
	// unkeyed registration.
	Key string

	// Optional makes an unregistered reference resolve to nil instead of
	// failing the resolution. Other failures still propagate.
	Optional bool
}

// Ref declares a dependency on the unkeyed registration of name.
func Ref(name string) Dep {
	return Dep{Name: name}
}

// RefKeyed declares a dependency on the registration of name under key.
func RefKeyed(name, key string) Dep {
	return Dep{Name: name, Key: key}
}

// OptionalRef declares a dependency that resolves to nil when name is not
// registered.
func OptionalRef(name string) Dep {
	return Dep{Name: name, Optional: true}
}

// String renders the reference the way resolution paths and diagnostics
// do: name, or name[key] for keyed references.
func (d Dep) String() string {
	if d.Key == "" {
		return d.Name
	}
	return d.Name + "[" + d.Key + "]"
}

// DepNames renders deps in declaration order.
func DepNames(deps []Dep) []string {
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.String()
	}
	return names
}

// duplicateDep reports the first reference declared more than once.
// Optionality does not distinguish references: declaring a service both
// required and optional is still a duplicate.
func duplicateDep(deps []Dep) (Dep, bool) {
	seen := make(map[registrationKey]bool, len(deps))
	for _, d := range deps {
		k := registrationKey{name: d.Name, key: d.Key}
		if seen[k] {
			return d, true
		}
		seen[k] = true
	}
	return Dep{}, false
}
