package container

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNoConstructor is the cause of a ConstructionError when a candidate
	// type has no usable zero-argument constructor.
	ErrNoConstructor = errors.New("no zero-argument constructor")

	// ErrConstructorPanic is the cause of a ConstructionError when the
	// constructor panicked.
	ErrConstructorPanic = errors.New("constructor panicked")

	// ErrNilInstance is the cause of a ConstructionError when the constructor
	// returned a nil pointer without an error.
	ErrNilInstance = errors.New("constructor returned nil")
)

// ConstructionError reports that a candidate type could not be instantiated.
// The underlying cause is always kept and reachable through errors.Is / As.
type ConstructionError struct {
	Type  reflect.Type
	Cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("container: constructing %s: %v", typeName(e.Type), e.Cause)
}

func (e *ConstructionError) Unwrap() error { return e.Cause }

// DuplicateCandidateError reports two candidates sharing one concrete type.
type DuplicateCandidateError struct {
	Type reflect.Type
}

func (e *DuplicateCandidateError) Error() string {
	return fmt.Sprintf("container: duplicate candidate type %s", typeName(e.Type))
}

// AmbiguousDependencyError is only produced with WithStrictResolution, when a
// field's declared type has no exact match and several assignable ones.
type AmbiguousDependencyError struct {
	Owner      reflect.Type
	Field      string
	Requested  reflect.Type
	Candidates []reflect.Type
}

func (e *AmbiguousDependencyError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, t := range e.Candidates {
		names[i] = typeName(t)
	}
	return fmt.Sprintf("container: %s.%s: %s is satisfied by %d instances (%s)",
		typeName(e.Owner), e.Field, typeName(e.Requested), len(e.Candidates), strings.Join(names, ", "))
}

// InitializationError wraps the error returned by an Initializer.
type InitializationError struct {
	Type  reflect.Type
	Cause error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("container: initializing %s: %v", typeName(e.Type), e.Cause)
}

func (e *InitializationError) Unwrap() error { return e.Cause }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
