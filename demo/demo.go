// Package demo is a small set of components wired by the container: a
// repository, a service depending on it, and a consumer depending on an
// interface.
package demo

import (
	"fmt"

	"github.com/km-arc/go-beans/framework/container"
	"github.com/km-arc/go-beans/framework/scanner"
)

func init() {
	scanner.Register(
		container.TypeOf[ServiceA](),
		container.TypeOf[RepositoryB](),
		container.TypeOf[Consumer](),
		container.Constructor(NewGreeter),
		container.TypeOf[Unmanaged](),
	)
}

// InterfaceX is what Consumer depends on. ServiceA implements it.
type InterfaceX interface {
	Describe() string
}

// RepositoryB stores greetings.
type RepositoryB struct {
	container.Repository
	greetings []string
}

func (r *RepositoryB) Save(s string) { r.greetings = append(r.greetings, s) }

func (r *RepositoryB) Count() int { return len(r.greetings) }

// ServiceA depends on RepositoryB.
type ServiceA struct {
	container.Service
	Repo *RepositoryB `inject:""`
}

func (s *ServiceA) Describe() string {
	return fmt.Sprintf("ServiceA backed by %d greeting(s)", s.Repo.Count())
}

// Greeter is built by NewGreeter rather than by zero value.
type Greeter struct {
	container.Component
	Prefix string
	Repo   *RepositoryB `inject:""`
}

func NewGreeter() *Greeter { return &Greeter{Prefix: "hello"} }

// Greet stores and returns a greeting for name.
func (g *Greeter) Greet(name string) string {
	msg := g.Prefix + ", " + name
	g.Repo.Save(msg)
	return msg
}

// Consumer depends on InterfaceX, satisfied by ServiceA.
type Consumer struct {
	container.Component
	Dep     InterfaceX `inject:""`
	Greeter *Greeter   `inject:""`
}

// Run greets name and describes its dependency.
func (c *Consumer) Run(name string) string {
	return c.Greeter.Greet(name) + " / " + c.Dep.Describe()
}

// Unmanaged is registered but carries no marker, so the scanner skips it.
type Unmanaged struct{}
