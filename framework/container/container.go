package container

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

// Initializer is implemented by instances that need a hook once every
// instance in the container has been wired.
type Initializer interface {
	Initialize() error
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container owns one instance per candidate type and the wiring between them.
//
// A Container is only handed out once it is Ready. From then on it never
// changes, and GetBean may be called concurrently without locking, as long
// as callers do not reassign injected fields of the returned instances.
type Container struct {
	descriptor *Descriptor
	registry   *Registry
	resolver   *Resolver
	strict     bool
	state      State
	log        zerolog.Logger
}

// NewContainer builds every candidate, wires their injectable fields and
// returns the Ready container. Any failure aborts the whole construction and
// no container is returned.
//
//	c, err := container.NewContainer([]container.CandidateType{
//	    container.TypeOf[UserService](),
//	    container.TypeOf[UserRepository](),
//	}, container.WithInjectableFilter(container.InjectTag))
func NewContainer(candidates []CandidateType, opts ...Option) (*Container, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{
		descriptor: NewDescriptor(o.isComponent, o.isInjectable),
		strict:     o.strict,
		state:      StateUninitialized,
		log:        o.log,
	}

	if err := c.build(candidates); err != nil {
		return nil, c.fail(err)
	}
	if err := c.wire(); err != nil {
		return nil, c.fail(err)
	}
	if err := c.initialize(); err != nil {
		return nil, c.fail(err)
	}

	c.resolver.freeze()
	c.transition(StateReady)
	return c, nil
}

// build is phase 1: construct every component candidate.
func (c *Container) build(candidates []CandidateType) error {
	c.transition(StateBuilding)

	components := make([]CandidateType, 0, len(candidates))
	for _, cand := range candidates {
		if !c.descriptor.IsComponent(cand) {
			c.log.Debug().Str("type", cand.String()).Msg("skipped: not a component")
			continue
		}
		components = append(components, cand)
	}

	if err := checkDuplicates(components); err != nil {
		return err
	}

	instances, err := NewBeanFactory(c.descriptor, c.log).BuildAll(components)
	if err != nil {
		return err
	}

	c.registry = newRegistry(len(instances))
	for _, inst := range instances {
		if err := c.registry.Insert(inst); err != nil {
			return err
		}
	}
	c.resolver = NewResolver(c.registry)
	return nil
}

// wire is phase 2: assign every resolvable injectable field. It only starts
// once all instances exist.
func (c *Container) wire() error {
	c.transition(StateWiring)

	for _, inst := range c.registry.All() {
		for _, slot := range c.descriptor.InjectableFields(inst.typ) {
			if c.strict {
				if matches := c.resolver.Ambiguous(slot.Type); matches != nil {
					return ambiguityError(slot, matches)
				}
			}

			dep, ok := c.resolver.Resolve(slot.Type)
			if !ok {
				c.log.Debug().
					Str("type", typeName(inst.typ)).
					Str("field", slot.Name).
					Str("requested", typeName(slot.Type)).
					Msg("no instance, left at zero value")
				continue
			}

			inst.inject(slot, dep)
			c.log.Debug().
				Str("type", typeName(inst.typ)).
				Str("field", slot.Name).
				Str("instance", typeName(dep.typ)).
				Msg("wired")
		}
	}
	return nil
}

func (c *Container) initialize() error {
	for _, inst := range c.registry.All() {
		hook, ok := inst.Interface().(Initializer)
		if !ok {
			continue
		}
		if err := hook.Initialize(); err != nil {
			return &InitializationError{Type: inst.typ, Cause: err}
		}
	}
	return nil
}

func (c *Container) transition(s State) {
	c.log.Debug().Stringer("from", c.state).Stringer("to", s).Msg("container state")
	c.state = s
}

func (c *Container) fail(err error) error {
	phase := c.state
	c.transition(StateFailed)
	c.registry = nil
	c.resolver = nil
	return fmt.Errorf("%s: %w", phase, err)
}

func ambiguityError(slot FieldSlot, matches []*Instance) error {
	types := make([]reflect.Type, len(matches))
	for i, m := range matches {
		types[i] = m.typ
	}
	return &AmbiguousDependencyError{
		Owner:      slot.Owner,
		Field:      slot.Name,
		Requested:  slot.Type,
		Candidates: types,
	}
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// State returns the lifecycle state. A container obtained from NewContainer
// is always StateReady.
func (c *Container) State() State {
	if c == nil {
		return StateUninitialized
	}
	return c.state
}

// GetBean returns the instance for t: the instance of concrete type t when
// there is one, otherwise an instance assignable to t. ok is false when no
// instance matches, or in strict mode when several do.
func (c *Container) GetBean(t reflect.Type) (bean any, ok bool) {
	if c == nil || c.state != StateReady {
		return nil, false
	}
	if c.strict && c.resolver.Ambiguous(t) != nil {
		return nil, false
	}
	inst, ok := c.resolver.Resolve(t)
	if !ok {
		return nil, false
	}
	return inst.Interface(), true
}

// Len returns the number of managed instances.
func (c *Container) Len() int {
	if c == nil || c.registry == nil {
		return 0
	}
	return c.registry.Len()
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a typed GetBean.
//
//	svc, ok := container.Resolve[*UserService](c)
//	repo, ok := container.Resolve[UserRepository](c) // interface lookup
func Resolve[T any](c *Container) (T, bool) {
	var zero T
	bean, ok := c.GetBean(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := bean.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// MustResolve is like Resolve but panics when nothing matches. Meant for
// composition roots where a missing bean is a programming error.
func MustResolve[T any](c *Container) T {
	typed, ok := Resolve[T](c)
	if !ok {
		panic(fmt.Sprintf("container: MustResolve[%s]: no matching instance", reflect.TypeFor[T]()))
	}
	return typed
}
