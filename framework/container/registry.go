package container

import "reflect"

// Registry is the set of constructed instances owned by one Container. It
// keeps insertion order, which is the candidate order, and holds at most one
// instance per concrete type.
type Registry struct {
	instances []*Instance
	byType    map[reflect.Type]*Instance
}

func newRegistry(size int) *Registry {
	return &Registry{
		instances: make([]*Instance, 0, size),
		byType:    make(map[reflect.Type]*Instance, size),
	}
}

// Insert adds inst. A second instance of the same concrete type is rejected
// with a *DuplicateCandidateError.
func (r *Registry) Insert(inst *Instance) error {
	if _, exists := r.byType[inst.typ]; exists {
		return &DuplicateCandidateError{Type: inst.typ}
	}
	r.byType[inst.typ] = inst
	r.instances = append(r.instances, inst)
	return nil
}

// Exact returns the instance whose concrete type is t.
func (r *Registry) Exact(t reflect.Type) (*Instance, bool) {
	inst, ok := r.byType[t]
	return inst, ok
}

// All returns the instances in insertion order. The slice must not be modified.
func (r *Registry) All() []*Instance { return r.instances }

// Len returns the number of instances.
func (r *Registry) Len() int { return len(r.instances) }
