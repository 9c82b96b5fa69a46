package container

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// CandidateType is an opaque handle to one type the container may manage.
// Its identity is the concrete type of the instance it produces, which for
// struct types is always the pointer type *T.
type CandidateType struct {
	typ  reflect.Type
	ctor reflect.Value

	// err is a constructor problem found while building the handle. It is
	// reported by Construct so NewContainer fails as a whole.
	err error
}

// TypeOf returns the candidate for T, constructed from its zero value.
// T may be a struct type or a pointer to one:
//
//	container.TypeOf[UserService]()
//	container.TypeOf[*UserService]()
func TypeOf[T any]() CandidateType {
	return Candidate(reflect.TypeFor[T]())
}

// Candidate builds a candidate from a reflect.Type, a typed sample such as
// (*UserService)(nil), or a constructor function (see Constructor).
func Candidate(v any) CandidateType {
	switch x := v.(type) {
	case nil:
		return CandidateType{err: fmt.Errorf("%w: nil candidate", ErrNoConstructor)}
	case CandidateType:
		return x
	case reflect.Type:
		return fromType(x)
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Func {
		return Constructor(v)
	}
	return fromType(t)
}

func fromType(t reflect.Type) CandidateType {
	if t.Kind() == reflect.Struct {
		t = reflect.PointerTo(t)
	}
	return CandidateType{typ: t}
}

// Constructor builds a candidate from an explicit zero-argument constructor
// with the signature func() *T or func() (*T, error). A function with any
// other shape yields a candidate that fails construction with ErrNoConstructor.
func Constructor(fn any) CandidateType {
	val := reflect.ValueOf(fn)
	if !val.IsValid() || val.Kind() != reflect.Func {
		return CandidateType{typ: reflect.TypeOf(fn), err: fmt.Errorf("%w: %T is not a function", ErrNoConstructor, fn)}
	}
	if val.IsNil() {
		return CandidateType{typ: val.Type(), err: fmt.Errorf("%w: nil constructor", ErrNoConstructor)}
	}

	typ := val.Type()
	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return CandidateType{typ: typ, err: fmt.Errorf("%w: constructor must return (*T) or (*T, error)", ErrNoConstructor)}
	}

	out := typ.Out(0)
	c := CandidateType{typ: out, ctor: val}
	switch {
	case typ.NumIn() != 0:
		c.err = fmt.Errorf("%w: constructor takes %d parameters", ErrNoConstructor, typ.NumIn())
	case out.Kind() != reflect.Pointer:
		c.err = fmt.Errorf("%w: constructor returns %s, not a pointer", ErrNoConstructor, out)
	case typ.NumOut() == 2 && !typ.Out(1).Implements(errorType):
		c.err = fmt.Errorf("%w: second return value must implement error", ErrNoConstructor)
	}
	return c
}

// Type returns the concrete type of the instance the candidate produces.
func (c CandidateType) Type() reflect.Type { return c.typ }

func (c CandidateType) String() string { return typeName(c.typ) }
