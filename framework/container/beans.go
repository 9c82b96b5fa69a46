package container

import "reflect"

// BeanInfo describes one managed instance and the state of its injection points.
type BeanInfo struct {
	Type   string      `json:"type"`
	Fields []FieldInfo `json:"fields"`
}

// FieldInfo describes one injectable field. WiredTo is the concrete type of
// the value the field holds, or empty when it was left at its zero value.
type FieldInfo struct {
	Name     string `json:"name"`
	Declared string `json:"declared"`
	WiredTo  string `json:"wired_to,omitempty"`
}

// Beans returns a snapshot of every instance in candidate order.
func (c *Container) Beans() []BeanInfo {
	if c == nil || c.state != StateReady {
		return nil
	}
	out := make([]BeanInfo, 0, c.registry.Len())
	for _, inst := range c.registry.All() {
		out = append(out, c.describe(inst))
	}
	return out
}

// Bean returns the snapshot of the instance whose concrete type prints as name,
// e.g. "*demo.ServiceA".
func (c *Container) Bean(name string) (BeanInfo, bool) {
	if c == nil || c.state != StateReady {
		return BeanInfo{}, false
	}
	for _, inst := range c.registry.All() {
		if typeName(inst.typ) == name {
			return c.describe(inst), true
		}
	}
	return BeanInfo{}, false
}

func (c *Container) describe(inst *Instance) BeanInfo {
	info := BeanInfo{Type: typeName(inst.typ), Fields: []FieldInfo{}}
	for _, slot := range c.descriptor.InjectableFields(inst.typ) {
		info.Fields = append(info.Fields, FieldInfo{
			Name:     slot.Name,
			Declared: typeName(slot.Type),
			WiredTo:  wiredTo(inst.field(slot)),
		})
	}
	return info
}

func wiredTo(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return ""
		}
		return v.Elem().Type().String()
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return ""
		}
		return v.Type().String()
	default:
		if v.IsZero() {
			return ""
		}
		return v.Type().String()
	}
}
