package container

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ComponentFilter decides whether a candidate's concrete type is a component.
type ComponentFilter func(t reflect.Type) bool

// InjectableFilter decides whether a declared struct field is injectable.
type InjectableFilter func(f reflect.StructField) bool

// FieldSlot is one injection point: a direct field of Owner's struct.
type FieldSlot struct {
	Owner reflect.Type
	Index int
	Name  string
	Type  reflect.Type
}

// Descriptor answers the metadata questions the container asks about a
// candidate type. A nil component filter accepts every candidate; a nil
// injectable filter selects every declared field (implicit wiring).
type Descriptor struct {
	isComponent  ComponentFilter
	isInjectable InjectableFilter
}

// NewDescriptor returns a Descriptor using the given predicates. Either may be nil.
func NewDescriptor(isComponent ComponentFilter, isInjectable InjectableFilter) *Descriptor {
	return &Descriptor{isComponent: isComponent, isInjectable: isInjectable}
}

// IsComponent reports whether c should be managed by the container.
func (d *Descriptor) IsComponent(c CandidateType) bool {
	if d.isComponent == nil {
		return true
	}
	return c.typ != nil && d.isComponent(c.typ)
}

// InjectableFields returns the injection points of t in declaration order.
// Embedded markers, blank fields and fields tagged `inject:"-"` are never
// returned.
func (d *Descriptor) InjectableFields(t reflect.Type) []FieldSlot {
	st, ok := structOf(t)
	if !ok {
		return nil
	}

	var slots []FieldSlot
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.Name == "_" || isMarkerField(f) || f.Tag.Get(InjectTagKey) == "-" {
			continue
		}
		if d.isInjectable != nil && !d.isInjectable(f) {
			continue
		}
		slots = append(slots, FieldSlot{Owner: t, Index: i, Name: f.Name, Type: f.Type})
	}
	return slots
}

// Construct invokes the candidate's zero-argument constructor. Every failure,
// including a panic inside the constructor, is returned as a *ConstructionError.
func (d *Descriptor) Construct(c CandidateType) (inst *Instance, err error) {
	if c.err != nil {
		return nil, &ConstructionError{Type: c.typ, Cause: c.err}
	}

	defer func() {
		if r := recover(); r != nil {
			inst = nil
			err = &ConstructionError{Type: c.typ, Cause: fmt.Errorf("%w: %v", ErrConstructorPanic, r)}
		}
	}()

	var val reflect.Value
	switch {
	case c.ctor.IsValid():
		out := c.ctor.Call(nil)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, &ConstructionError{Type: c.typ, Cause: out[1].Interface().(error)}
		}
		val = out[0]
		if val.IsNil() {
			return nil, &ConstructionError{Type: c.typ, Cause: ErrNilInstance}
		}
	case c.typ != nil && c.typ.Kind() == reflect.Pointer && c.typ.Elem().Kind() == reflect.Struct:
		val = reflect.New(c.typ.Elem())
	default:
		return nil, &ConstructionError{Type: c.typ, Cause: ErrNoConstructor}
	}

	return &Instance{typ: c.typ, val: val}, nil
}

// Instance is one constructed object together with its concrete type.
type Instance struct {
	typ reflect.Type
	val reflect.Value
}

// Type returns the concrete type of the instance.
func (i *Instance) Type() reflect.Type { return i.typ }

// Interface returns the instance itself.
func (i *Instance) Interface() any { return i.val.Interface() }

// field returns a settable view of the slot's field, unexported or not.
func (i *Instance) field(slot FieldSlot) reflect.Value {
	f := i.val.Elem().Field(slot.Index)
	if f.CanSet() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

func (i *Instance) inject(slot FieldSlot, dep *Instance) {
	i.field(slot).Set(dep.val)
}
