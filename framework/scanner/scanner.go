// Package scanner is the component discovery side of the container: packages
// register their candidate types from init(), and applications scan the
// catalog by package path to get the candidates to build a container from.
//
//	func init() {
//	    scanner.Register(
//	        container.TypeOf[UserService](),
//	        container.TypeOf[UserRepository](),
//	    )
//	}
//
//	c, err := container.NewContainer(scanner.Scan("github.com/acme/shop/users"))
package scanner

import (
	"reflect"
	"strings"
	"sync"

	"github.com/km-arc/go-beans/framework/container"
)

// Catalog holds candidate types in registration order.
type Catalog struct {
	mu    sync.RWMutex
	items []container.CandidateType
	seen  map[reflect.Type]bool
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{seen: make(map[reflect.Type]bool)}
}

// Register adds candidates. A type already in the catalog is ignored, so
// registering from several init() functions is harmless.
func (c *Catalog) Register(candidates ...container.CandidateType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, cand := range candidates {
		t := cand.Type()
		if t == nil || c.seen[t] {
			continue
		}
		c.seen[t] = true
		c.items = append(c.items, cand)
	}
}

// Scan returns, in registration order, the marked components whose package
// path starts with one of prefixes. No prefix means every package.
func (c *Catalog) Scan(prefixes ...string) []container.CandidateType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []container.CandidateType
	for _, cand := range c.items {
		t := cand.Type()
		if !container.HasMarker(t) || !inPackages(pkgPath(t), prefixes) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// All returns every registered candidate, marked or not.
func (c *Catalog) All() []container.CandidateType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]container.CandidateType, len(c.items))
	copy(out, c.items)
	return out
}

func pkgPath(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath()
}

// inPackages matches whole path segments: "a/b" matches "a/b" and "a/b/c"
// but not "a/bc".
func inPackages(path string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		p = strings.TrimSuffix(p, "/")
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// ── Default catalog ──────────────────────────────────────────────────────────

// Default is the catalog behind the package-level Register and Scan.
var Default = NewCatalog()

// Register adds candidates to the Default catalog.
func Register(candidates ...container.CandidateType) {
	Default.Register(candidates...)
}

// Scan scans the Default catalog.
func Scan(prefixes ...string) []container.CandidateType {
	return Default.Scan(prefixes...)
}
