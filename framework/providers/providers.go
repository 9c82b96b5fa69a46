package providers

import (
	"github.com/rs/zerolog"

	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/scanner"
)

// ── ScannerProvider ───────────────────────────────────────────────────────────

// ScannerProvider contributes the marked components registered with a scanner
// catalog under the given package prefixes.
//
// Candidates:
//   - every catalog entry carrying a Component, Service or Repository marker
//     whose package path is under one of Prefixes (all packages when empty)
type ScannerProvider struct {
	container.BaseProvider
	Catalog  *scanner.Catalog // default: scanner.Default
	Prefixes []string
}

func (p *ScannerProvider) Register(set *container.CandidateSet) {
	catalog := p.Catalog
	if catalog == nil {
		catalog = scanner.Default
	}
	set.Add(catalog.Scan(p.Prefixes...)...)
}

// ── TypesProvider ─────────────────────────────────────────────────────────────

// TypesProvider contributes a fixed list of candidates, marked or not. Useful
// for types owned by packages that do not register with the scanner.
type TypesProvider struct {
	container.BaseProvider
	Types []container.CandidateType
}

func (p *TypesProvider) Register(set *container.CandidateSet) {
	set.Add(p.Types...)
}

// ── SummaryProvider ───────────────────────────────────────────────────────────

// SummaryProvider contributes no candidates. On Boot it logs one line per
// managed bean and its wiring.
type SummaryProvider struct {
	Log zerolog.Logger
}

func (p *SummaryProvider) Register(_ *container.CandidateSet) {}

func (p *SummaryProvider) Boot(c *container.Container) error {
	p.Log.Info().Int("beans", c.Len()).Msg("container ready")
	for _, bean := range c.Beans() {
		wired := zerolog.Dict()
		for _, f := range bean.Fields {
			wired.Str(f.Name, f.WiredTo)
		}
		p.Log.Debug().Str("type", bean.Type).Dict("fields", wired).Msg("bean")
	}
	return nil
}
