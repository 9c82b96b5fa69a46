package container

import (
	"reflect"

	"github.com/rs/zerolog"
)

// BeanFactory creates one instance per candidate type.
type BeanFactory struct {
	descriptor *Descriptor
	log        zerolog.Logger
}

// NewBeanFactory returns a factory constructing through d.
func NewBeanFactory(d *Descriptor, log zerolog.Logger) *BeanFactory {
	return &BeanFactory{descriptor: d, log: log}
}

// BuildAll constructs every candidate, in order. The first failure aborts the
// whole build and no instance is returned.
func (f *BeanFactory) BuildAll(candidates []CandidateType) ([]*Instance, error) {
	out := make([]*Instance, 0, len(candidates))
	for _, c := range candidates {
		inst, err := f.descriptor.Construct(c)
		if err != nil {
			return nil, err
		}
		f.log.Debug().Str("type", c.String()).Msg("constructed")
		out = append(out, inst)
	}
	return out, nil
}

// checkDuplicates rejects candidate lists naming the same concrete type twice.
// It runs before any constructor is invoked.
func checkDuplicates(candidates []CandidateType) error {
	seen := make(map[reflect.Type]bool, len(candidates))
	for _, c := range candidates {
		if c.typ == nil {
			continue
		}
		if seen[c.typ] {
			return &DuplicateCandidateError{Type: c.typ}
		}
		seen[c.typ] = true
	}
	return nil
}
