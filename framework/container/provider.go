package container

import (
	"errors"
	"fmt"
)

// ErrRegistryBooted is returned when a provider is added after Boot.
var ErrRegistryBooted = errors.New("provider registry already booted")

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups the candidate types of one module of an application.
//
// Register is called while candidates are being collected; it must only add
// types. Boot is called after the container built from every provider's
// candidates is Ready, making it safe to look beans up inside Boot.
//
//	type UserModule struct{ container.BaseProvider }
//
//	func (p *UserModule) Register(set *container.CandidateSet) {
//	    set.Add(container.TypeOf[UserService](), container.TypeOf[UserRepository]())
//	}
//
//	func (p *UserModule) Boot(c *container.Container) error {
//	    svc := container.MustResolve[*UserService](c)
//	    return svc.Warmup()
//	}
type ServiceProvider interface {
	Register(set *CandidateSet)
	Boot(c *Container) error
}

// BaseProvider is an embeddable struct with a no-op Boot.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// ── CandidateSet ──────────────────────────────────────────────────────────────

// CandidateSet accumulates candidate types in the order they are added.
type CandidateSet struct {
	items []CandidateType
}

// Add appends candidates and returns the set for chaining.
func (s *CandidateSet) Add(candidates ...CandidateType) *CandidateSet {
	s.items = append(s.items, candidates...)
	return s
}

// Types returns the collected candidates.
func (s *CandidateSet) Types() []CandidateType { return s.items }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry collects candidates from providers, builds one Container
// from them and boots the providers against it.
type ProviderRegistry struct {
	opts       []Option
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	container  *Container
	booted     bool
}

// NewProviderRegistry creates a registry whose container is built with opts.
func NewProviderRegistry(opts ...Option) *ProviderRegistry {
	return &ProviderRegistry{
		opts:       opts,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider. Adding the same provider twice is a no-op.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.booted {
		return ErrRegistryBooted
	}
	if r.registered[provider] {
		return nil
	}
	r.registered[provider] = true
	r.providers = append(r.providers, provider)
	return nil
}

// Boot builds the container from every provider's candidates, in
// registration order, then calls Boot on each provider. Calling Boot again
// returns the same container.
func (r *ProviderRegistry) Boot() (*Container, error) {
	if r.booted {
		return r.container, nil
	}

	set := &CandidateSet{}
	for _, p := range r.providers {
		p.Register(set)
	}

	c, err := NewContainer(set.Types(), r.opts...)
	if err != nil {
		return nil, err
	}

	for _, p := range r.providers {
		if err := p.Boot(c); err != nil {
			return nil, fmt.Errorf("booting %T: %w", p, err)
		}
	}

	r.container = c
	r.booted = true
	return c, nil
}

// Booted returns true once Boot has succeeded.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }

// Container returns the booted container, or nil before Boot.
func (r *ProviderRegistry) Container() *Container { return r.container }
