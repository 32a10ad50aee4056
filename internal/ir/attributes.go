package ir

// Attributes is a set of named numeric annotations attached to an entity.
// A present name with value 0 still counts as present.
type Attributes map[Id]uint64

// Has reports whether the attribute is present.
func (a Attributes) Has(name Id) bool {
	_, ok := a[name]
	return ok
}

// Get returns the attribute's value and whether it is present.
func (a Attributes) Get(name Id) (uint64, bool) {
	v, ok := a[name]
	return v, ok
}

// Set stores the attribute. The receiver must be non-nil.
func (a Attributes) Set(name Id, value uint64) {
	a[name] = value
}

// Clone returns an independent copy. Cloning nil yields nil.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
