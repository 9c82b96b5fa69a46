// Package container provides a small inversion-of-control container that
// builds one instance per candidate type and wires struct fields by type.
//
// # Overview
//
// The container is given a fixed list of candidate types. It constructs each
// of them, then assigns every injectable field from the instances it holds,
// matching the field's declared type exactly or by assignability (a pointer
// type satisfying an interface, for instance).
//
// # Container Lifecycle
//
//  1. Building: every candidate is constructed through its zero-argument
//     constructor. Duplicate candidates are rejected before anything runs.
//  2. Wiring: once all instances exist, each injectable field is assigned.
//     A field no instance satisfies keeps its zero value.
//  3. Ready: the container is returned and never changes again.
//
// Any failure moves the container to Failed and NewContainer returns only
// the error.
//
// # Candidates
//
//	// zero value of the struct
//	container.TypeOf[UserService]()
//
//	// explicit constructor: func() *T or func() (*T, error)
//	container.Constructor(NewMailer)
//
// # Marking
//
// Without options every declared field is a wiring target and every
// candidate is managed. Markers make both explicit:
//
//	type UserService struct {
//	    container.Service
//	    Repo  UserRepository `inject:""`
//	    cache map[string]*User
//	}
//
//	c, err := container.NewContainer(candidates,
//	    container.WithComponentFilter(container.HasMarker),
//	    container.WithInjectableFilter(container.InjectTag),
//	)
//
// A field tagged `inject:"-"` is never wired.
//
// # Resolving
//
//	svc, ok := container.Resolve[*UserService](c)
//	repo, ok := container.Resolve[UserRepository](c)
//
// When several instances satisfy an interface and none has that exact type,
// the first in candidate order wins. WithStrictResolution turns that case
// into an *AmbiguousDependencyError at wiring time.
//
// # Service Providers
//
//	registry := container.NewProviderRegistry(container.WithInjectableFilter(container.InjectTag))
//	registry.Register(&UserModule{})
//	c, err := registry.Boot()
package container
