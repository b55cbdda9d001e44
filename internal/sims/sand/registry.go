package sand

// Registry resolves element names and ids to their shared descriptors. It is
// populated once at startup and never mutated afterwards, so behaviors and
// interaction rules can resolve transformation targets without locking.
type Registry struct {
	byName map[string]*Element
	byID   []*Element
}

// NewRegistry builds a registry from the provided descriptors. The first
// element must be the empty element (id 0). Ids are assigned in order.
func NewRegistry(elems []*Element) *Registry {
	r := &Registry{
		byName: make(map[string]*Element, len(elems)),
		byID:   make([]*Element, 0, len(elems)),
	}
	for i, e := range elems {
		e.ID = ID(i)
		r.byName[e.Name] = e
		r.byID = append(r.byID, e)
	}
	return r
}

// Get returns the element with the given name. A miss indicates a catalog or
// config error; callers skip the action per the error model.
func (r *Registry) Get(name string) (*Element, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// ByID returns the element for id, or the empty element for unknown ids.
func (r *Registry) ByID(id ID) *Element {
	if int(id) >= len(r.byID) {
		return r.byID[EmptyID]
	}
	return r.byID[id]
}

// Empty returns the shared empty element.
func (r *Registry) Empty() *Element { return r.byID[EmptyID] }

// Len reports the number of registered elements.
func (r *Registry) Len() int { return len(r.byID) }

// All returns the registered elements in id order.
func (r *Registry) All() []*Element { return r.byID }
