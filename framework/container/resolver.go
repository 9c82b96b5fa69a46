package container

import "reflect"

// Resolver finds the instance satisfying a requested type: an exact match on
// the concrete type first, then the first assignable instance in candidate
// order. Not finding anything is a normal outcome, not an error.
//
// Assignable matches are cached per requested type while the container is
// being wired. Once frozen the cache is only read, so lookups are safe from
// any number of goroutines.
type Resolver struct {
	registry *Registry
	table    map[reflect.Type][]*Instance
	frozen   bool
}

// NewResolver returns a resolver over r.
func NewResolver(r *Registry) *Resolver {
	return &Resolver{registry: r, table: make(map[reflect.Type][]*Instance)}
}

// Resolve returns the instance for t, if any.
func (r *Resolver) Resolve(t reflect.Type) (*Instance, bool) {
	if inst, ok := r.registry.Exact(t); ok {
		return inst, true
	}
	if matches := r.assignable(t); len(matches) > 0 {
		return matches[0], true
	}
	return nil, false
}

// Ambiguous returns every assignable instance when t has no exact match and
// more than one assignable one. It returns nil otherwise.
func (r *Resolver) Ambiguous(t reflect.Type) []*Instance {
	if _, ok := r.registry.Exact(t); ok {
		return nil
	}
	if matches := r.assignable(t); len(matches) > 1 {
		return matches
	}
	return nil
}

func (r *Resolver) assignable(t reflect.Type) []*Instance {
	if matches, ok := r.table[t]; ok {
		return matches
	}

	var matches []*Instance
	if t != nil {
		for _, inst := range r.registry.All() {
			if inst.typ.AssignableTo(t) {
				matches = append(matches, inst)
			}
		}
	}

	if !r.frozen {
		r.table[t] = matches
	}
	return matches
}

func (r *Resolver) freeze() { r.frozen = true }
