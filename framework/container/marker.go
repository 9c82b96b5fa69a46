package container

import "reflect"

// Component marks a struct as a managed component when embedded:
//
//	type Mailer struct {
//	    container.Component
//	    Log Logger `inject:""`
//	}
type Component struct{}

// Service is a Component marker for service-layer types.
type Service struct{}

// Repository is a Component marker for data-access types.
type Repository struct{}

var markerTypes = map[reflect.Type]bool{
	reflect.TypeFor[Component]():  true,
	reflect.TypeFor[Service]():    true,
	reflect.TypeFor[Repository](): true,
}

// InjectTagKey is the struct tag consulted by InjectTag. The value "-"
// excludes a field from injection in every mode.
const InjectTagKey = "inject"

// HasMarker reports whether t (or the struct t points to) embeds one of the
// Component, Service or Repository markers. Use it with WithComponentFilter.
func HasMarker(t reflect.Type) bool {
	st, ok := structOf(t)
	if !ok {
		return false
	}
	for i := 0; i < st.NumField(); i++ {
		if isMarkerField(st.Field(i)) {
			return true
		}
	}
	return false
}

// InjectTag selects fields carrying an `inject` struct tag. Use it with
// WithInjectableFilter to switch from implicit wiring to explicit marking.
func InjectTag(f reflect.StructField) bool {
	_, ok := f.Tag.Lookup(InjectTagKey)
	return ok
}

func isMarkerField(f reflect.StructField) bool {
	return f.Anonymous && markerTypes[f.Type]
}

func structOf(t reflect.Type) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}
