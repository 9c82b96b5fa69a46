package container

import "github.com/rs/zerolog"

type options struct {
	isComponent  ComponentFilter
	isInjectable InjectableFilter
	strict       bool
	log          zerolog.Logger
}

func defaultOptions() options {
	return options{log: zerolog.Nop()}
}

// Option configures a Container at construction time.
type Option func(*options)

// WithComponentFilter only manages candidates for which fn returns true.
// The default manages every candidate, assuming the caller already filtered
// them (see scanner.Scan).
func WithComponentFilter(fn ComponentFilter) Option {
	return func(o *options) {
		o.isComponent = fn
	}
}

// WithInjectableFilter only wires fields for which fn returns true. Without
// it every declared field is a wiring target.
func WithInjectableFilter(fn InjectableFilter) Option {
	return func(o *options) {
		o.isInjectable = fn
	}
}

// WithStrictResolution rejects ambiguous dependencies instead of picking the
// first assignable instance in candidate order.
func WithStrictResolution() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger used for build and wiring diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
